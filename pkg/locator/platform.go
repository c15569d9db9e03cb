/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package locator

import (
	"fmt"
	"strings"
)

// OS identifies a target operating system for an installer download.
type OS string

const (
	// OSLinux targets the .run local installers.
	OSLinux OS = "linux"
	// OSWindows targets the .exe local installers.
	OSWindows OS = "windows"
)

// Arch identifies a target CPU architecture for an installer download.
type Arch string

const (
	// ArchX8664 is the x86-64 architecture.
	ArchX8664 Arch = "x86_64"
	// ArchSBSA is the ARM64 server (SBSA) architecture. Only distributed
	// for Linux starting with the 11.x releases.
	ArchSBSA Arch = "sbsa"
)

// ParseOS normalizes an operating system name. Accepted values
// (case-insensitive): linux, windows, win.
func ParseOS(s string) (OS, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linux":
		return OSLinux, nil
	case "windows", "win":
		return OSWindows, nil
	default:
		return "", fmt.Errorf("unknown operating system: %q (supported: linux, windows)", s)
	}
}

// ParseArch normalizes a CPU architecture name. Accepted values
// (case-insensitive): x86_64, amd64, x64, sbsa, arm64, aarch64.
func ParseArch(s string) (Arch, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x86_64", "x86-64", "amd64", "x64":
		return ArchX8664, nil
	case "sbsa", "arm64", "aarch64":
		return ArchSBSA, nil
	default:
		return "", fmt.Errorf("unknown architecture: %q (supported: x86_64, sbsa)", s)
	}
}
