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
package pipes_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"www.velocidex.com/golang/pipeowners/config"
	"www.velocidex.com/golang/pipeowners/constants"
	"www.velocidex.com/golang/pipeowners/logging"
	"www.velocidex.com/golang/pipeowners/pipes"
	"www.velocidex.com/golang/pipeowners/pipes/mock_pipes"
	"www.velocidex.com/golang/pipeowners/utils"
	"www.velocidex.com/golang/pipeowners/vtesting"
)

type ResolverTestSuite struct {
	suite.Suite
	config_obj *config.Config
	ctrl       *gomock.Controller
	mock       *mock_pipes.MockIntrospector
	logger     *logging.LogContext
}

func (self *ResolverTestSuite) SetupTest() {
	self.config_obj = config.GetDefaultConfig()
	self.config_obj.Logging.Level = "debug"
	require.NoError(self.T(), logging.InitLogging(self.config_obj))
	logging.ClearMemoryLogs()

	self.ctrl = gomock.NewController(self.T())
	self.mock = mock_pipes.NewMockIntrospector(self.ctrl)
	self.logger = logging.GetLogger(self.config_obj, &logging.PipesComponent)
}

func (self *ResolverTestSuite) TearDownTest() {
	self.ctrl.Finish()
}

func (self *ResolverTestSuite) TestListPipesPolicy() {
	self.mock.EXPECT().ListPipeNames().Return(nil, errors.New("Access is denied.")).Times(2)

	// Fatal policy surfaces the failure.
	names, err := pipes.ListPipes(self.mock, pipes.NamespaceFatal, self.logger)
	assert.Error(self.T(), err)
	assert.True(self.T(), errors.Is(err, utils.NamespaceUnreadableError))
	assert.Nil(self.T(), names)

	// Empty policy swallows it with a warning.
	names, err = pipes.ListPipes(self.mock, pipes.NamespaceEmpty, self.logger)
	assert.NoError(self.T(), err)
	assert.NotNil(self.T(), names)
	assert.Equal(self.T(), 0, len(names))
	assert.True(self.T(), logsContain("pipe namespace is not readable"))
}

func (self *ResolverTestSuite) TestListPipesOrder() {
	// Names come back in OS order without filtering.
	self.mock.EXPECT().ListPipeNames().Return(
		[]string{"lsass", "InitShutdown", "lsass", ""}, nil)

	names, err := pipes.ListPipes(self.mock, pipes.NamespaceFatal, self.logger)
	assert.NoError(self.T(), err)
	assert.Equal(self.T(), []string{"lsass", "InitShutdown", "lsass", ""}, names)
}

func (self *ResolverTestSuite) TestParseNamespacePolicy() {
	policy, err := pipes.ParseNamespacePolicy("")
	assert.NoError(self.T(), err)
	assert.Equal(self.T(), pipes.NamespaceFatal, policy)

	policy, err = pipes.ParseNamespacePolicy("empty")
	assert.NoError(self.T(), err)
	assert.Equal(self.T(), pipes.NamespaceEmpty, policy)
	assert.Equal(self.T(), "empty", policy.String())

	_, err = pipes.ParseNamespacePolicy("ignore")
	assert.True(self.T(), errors.Is(err, utils.InvalidConfigError))
}

func (self *ResolverTestSuite) TestResolveOwner() {
	self.mock.EXPECT().PipeServerPid("lsass").Return(uint32(720), nil)
	self.mock.EXPECT().PipeServerPid("busy").Return(
		uint32(0), errors.New("All pipe instances are busy."))

	pid, ok := pipes.ResolveOwner(self.mock, "lsass", self.logger)
	assert.True(self.T(), ok)
	assert.Equal(self.T(), uint32(720), pid)

	_, ok = pipes.ResolveOwner(self.mock, "busy", self.logger)
	assert.False(self.T(), ok)
	assert.True(self.T(), logsContain("skipping pipe busy"))
}

func (self *ResolverTestSuite) TestIdentityResolver() {
	self.mock.EXPECT().ListProcesses().Return([]pipes.ProcessEntry{
		{Pid: 4, Name: "System"},
		{Pid: 720, Name: "lsass.exe"},
	}, nil).Times(2)
	self.mock.EXPECT().ProcessImagePath(uint32(720)).Return(
		`C:\Windows\System32\lsass.exe`, nil)
	self.mock.EXPECT().ProcessImagePath(uint32(999)).Return(
		"", errors.New("Access is denied."))

	resolver := pipes.NewIdentityResolver(self.mock, self.logger)

	name, path := resolver.Resolve(720)
	assert.Equal(self.T(), "lsass.exe", name)
	assert.Equal(self.T(), `C:\Windows\System32\lsass.exe`, path)

	// Name and path fail independently.
	name, path = resolver.Resolve(999)
	assert.Equal(self.T(), constants.UNKNOWN_PROCESS_NAME, name)
	assert.Equal(self.T(), constants.ACCESS_DENIED_PATH, path)
}

func (self *ResolverTestSuite) TestIdentityResolverSnapshotFailure() {
	self.mock.EXPECT().ListProcesses().Return(nil, errors.New("snapshot failed"))
	self.mock.EXPECT().ProcessImagePath(uint32(50)).Return(`C:\b.exe`, nil)

	resolver := pipes.NewIdentityResolver(self.mock, self.logger)
	name, path := resolver.Resolve(50)
	assert.Equal(self.T(), "- (Unknown)", name)
	assert.Equal(self.T(), `C:\b.exe`, path)
}

func logsContain(substr string) bool {
	return vtesting.ContainsString(substr, logging.GetMemoryLogs())
}

func TestResolvers(t *testing.T) {
	suite.Run(t, &ResolverTestSuite{})
}
