// Package locator maps a concrete toolkit release and target platform to
// the installer download URL.
//
// Two lookup paths exist. Pre-11 releases used inconsistent installer
// names, so their URLs are compiled into a static legacy link table.
// Releases from 11.x on publish a checksum manifest with predictable
// installer filenames; the locator fetches that manifest and matches the
// expected pattern for the platform:
//
//	cuda_<version>_<driverversion>_linux.run        linux / x86_64
//	cuda_<version>_<driverversion>_linux_sbsa.run   linux / sbsa
//	*_windows.exe (falling back to *_win10.exe)     windows
//
// The manifest is consulted only to discover valid filenames; the
// checksums themselves are not used for download verification.
package locator
