/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package locator

import "github.com/NVIDIA/cuda-toolkit-locator/pkg/version"

const (
	// MinSupportedVersion is the oldest toolkit release the locator can
	// produce an installer URL for. Pre-11 releases circulate at
	// major.minor granularity, so the minimum does too.
	MinSupportedVersion = "8.0"

	// downloadBaseURL is the root of the toolkit download tree. Modern
	// installer URLs are composed as
	// <downloadBaseURL>/<version>/local_installers/<filename>.
	downloadBaseURL = "https://developer.download.nvidia.com/compute/cuda"

	// checksumURLTemplate locates the per-release checksum manifest for
	// 11.x and later releases.
	checksumURLTemplate = downloadBaseURL + "/%s/docs/sidebar/md5sum.txt"
)

// legacyLink holds the hand-maintained download URLs for a pre-11 release.
// The installer naming scheme changed between releases in that era, so the
// URLs cannot be derived from a pattern. An empty field means that
// installer was never published for the release.
type legacyLink struct {
	ChecksumURL   string
	LinuxX86URL   string
	LinuxARM64URL string
	WindowsURL    string
}

// legacyLinks covers exactly the set of pre-11 releases the locator
// supports, keyed at the major.minor granularity the catalog uses for
// that era. ARM64 server installers did not exist before 11.x, so
// LinuxARM64URL is empty throughout.
var legacyLinks = map[string]legacyLink{
	"8.0": {
		ChecksumURL: "https://developer.download.nvidia.com/compute/cuda/8.0/Prod2/docs/sidebar/md5sum.txt",
		LinuxX86URL: "https://developer.nvidia.com/compute/cuda/8.0/Prod2/local_installers/cuda_8.0.61_375.26_linux-run",
		WindowsURL:  "https://developer.nvidia.com/compute/cuda/8.0/Prod2/local_installers/cuda_8.0.61_win10-exe",
	},
	"9.2": {
		ChecksumURL: "https://developer.download.nvidia.com/compute/cuda/9.2/Prod2/docs/sidebar/md5sum.txt",
		LinuxX86URL: "https://developer.nvidia.com/compute/cuda/9.2/Prod2/local_installers/cuda_9.2.148_396.37_linux",
		WindowsURL:  "https://developer.nvidia.com/compute/cuda/9.2/Prod2/local_installers/cuda_9.2.148_win10",
	},
	"10.0": {
		ChecksumURL: "https://developer.download.nvidia.com/compute/cuda/10.0/Prod/docs/sidebar/md5sum.txt",
		LinuxX86URL: "https://developer.nvidia.com/compute/cuda/10.0/Prod/local_installers/cuda_10.0.130_410.48_linux",
		WindowsURL:  "https://developer.nvidia.com/compute/cuda/10.0/Prod/local_installers/cuda_10.0.130_411.31_win10",
	},
	"10.1": {
		ChecksumURL: "https://developer.download.nvidia.com/compute/cuda/10.1/Prod/docs/sidebar/md5sum.txt",
		LinuxX86URL: "https://developer.download.nvidia.com/compute/cuda/10.1/Prod/local_installers/cuda_10.1.243_418.87.00_linux.run",
		WindowsURL:  "https://developer.download.nvidia.com/compute/cuda/10.1/Prod/local_installers/cuda_10.1.243_426.00_win10.exe",
	},
	"10.2": {
		ChecksumURL: "https://developer.download.nvidia.com/compute/cuda/10.2/Prod/docs/sidebar/md5sum.txt",
		LinuxX86URL: "https://developer.download.nvidia.com/compute/cuda/10.2/Prod/local_installers/cuda_10.2.89_440.33.01_linux.run",
		WindowsURL:  "https://developer.download.nvidia.com/compute/cuda/10.2/Prod/local_installers/cuda_10.2.89_441.22_win10.exe",
	},
}

// LegacyVersions returns the releases covered by the legacy link table
// in their major.minor catalog representation, sorted ascending.
// Discovery merges these into the catalog since the scraped listings do
// not reliably include the pre-11 era.
func LegacyVersions() []string {
	versions := make([]string, 0, len(legacyLinks))
	for v := range legacyLinks {
		versions = append(versions, v)
	}
	return version.Sort(versions)
}
