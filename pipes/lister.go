/*
Velociraptor - Dig Deeper
Copyright (C) 2019-2025 Rapid7 Inc.

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published
by the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package pipes

import (
	"github.com/pkg/errors"
	"www.velocidex.com/golang/pipeowners/constants"
	"www.velocidex.com/golang/pipeowners/logging"
	"www.velocidex.com/golang/pipeowners/utils"
)

// Controls what happens when the pipe namespace can not be listed.
type NamespacePolicy int

const (
	// Abort the run with an error.
	NamespaceFatal NamespacePolicy = iota

	// Log a warning and carry on with no pipes.
	NamespaceEmpty
)

func ParseNamespacePolicy(policy string) (NamespacePolicy, error) {
	switch policy {
	case "", constants.NAMESPACE_POLICY_FATAL:
		return NamespaceFatal, nil
	case constants.NAMESPACE_POLICY_EMPTY:
		return NamespaceEmpty, nil
	}
	return NamespaceFatal, errors.Wrapf(utils.InvalidConfigError,
		"unknown namespace policy %q", policy)
}

func (self NamespacePolicy) String() string {
	if self == NamespaceEmpty {
		return constants.NAMESPACE_POLICY_EMPTY
	}
	return constants.NAMESPACE_POLICY_FATAL
}

// Returns all pipe names in the order the OS reports them.
func ListPipes(
	introspector Introspector,
	policy NamespacePolicy,
	logger *logging.LogContext) ([]string, error) {

	names, err := introspector.ListPipeNames()
	if err == nil {
		return names, nil
	}

	if policy == NamespaceEmpty {
		logger.Warn("ListPipes: pipe namespace is not readable, reporting no pipes: %v", err)
		return []string{}, nil
	}

	return nil, errors.Wrapf(utils.NamespaceUnreadableError, "ListPipes: %v", err)
}
