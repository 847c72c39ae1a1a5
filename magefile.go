//go:build mage
// +build mage

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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var (
	name = "pipeowners"

	Default = Windows
)

// The tool only does something useful on Windows, so this is the
// default target.
func Windows() error {
	return build("windows", "amd64", name+".exe")
}

func Windows386() error {
	return build("windows", "386", name+"-386.exe")
}

// Builds for the host. On anything but Windows the binary only
// reports that the platform is unsupported.
func Dev() error {
	return build("", "", name)
}

func Test() error {
	return sh.RunV(mg.GoCmd(), "test", "./...")
}

// Cross compile the tests so the Windows introspection code is at
// least type checked.
func TestWindows() error {
	env := map[string]string{"GOOS": "windows", "GOARCH": "amd64"}
	return sh.RunWithV(env, mg.GoCmd(), "vet", "./...")
}

// Regenerate the Introspector mock.
func Generate() error {
	return sh.RunV(mg.GoCmd(), "generate", "./pipes/")
}

func Clean() error {
	return sh.Rm("output")
}

func build(goos, goarch, output string) error {
	if err := os.Mkdir("output", 0700); err != nil && !os.IsExist(err) {
		return fmt.Errorf("failed to create output: %v", err)
	}

	env := map[string]string{"CGO_ENABLED": "0"}
	if goos != "" {
		env["GOOS"] = goos
		env["GOARCH"] = goarch
	}

	return sh.RunWith(
		env,
		mg.GoCmd(), "build",
		"-o", filepath.Join("output", output),
		"-ldflags=-s -w "+flags(),
		"./bin/")
}

func flags() string {
	timestamp := time.Now().Format(time.RFC3339)
	return fmt.Sprintf(`-X "www.velocidex.com/golang/pipeowners/config.build_time=%s" -X "www.velocidex.com/golang/pipeowners/config.commit_hash=%s"`, timestamp, hash())
}

// hash returns the git hash for the current repo or "" if none.
func hash() string {
	hash, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	return hash
}
