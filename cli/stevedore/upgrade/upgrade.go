// Package upgrade replaces the running binary with the latest GitHub
// release, verified against the published checksums.
package upgrade

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/apex/log"
	"github.com/google/go-github/v62/github"
	"github.com/minio/selfupdate"
	"golang.org/x/xerrors"
)

const repoOwner = "stevedore-deploy"
const repoName = "stevedore"

type Input struct {
	CurrentVersion string
	PreRelease     bool
	// TargetPath overrides the running executable as the update target.
	TargetPath string
}

func Upgrade(p *Input) error {
	ctx := context.Background()
	client := github.NewClient(nil)
	log.Infof("checking for updates...")
	releases, _, err := client.Repositories.ListReleases(ctx, repoOwner, repoName, nil)
	if err != nil {
		return err
	}
	latest := pickLatestRelease(releases, p.PreRelease)
	if latest == nil {
		return xerrors.Errorf("failed to find latest release")
	}
	log.Infof("latest release: %s", latest.GetTagName())
	latestVer := semver.MustParse(latest.GetTagName())
	if currVer, err := semver.NewVersion(p.CurrentVersion); err == nil {
		// a non-semver current version (dev build) always upgrades
		if !currVer.LessThan(latestVer) {
			log.Info("no updates available")
			return nil
		}
	}
	log.Infof("upgrading from %s to %s", p.CurrentVersion, latest.GetTagName())
	return apply(latest, p.TargetPath)
}

func pickLatestRelease(releases []*github.RepositoryRelease, preRelease bool) *github.RepositoryRelease {
	for _, release := range releases {
		if _, err := semver.NewVersion(release.GetTagName()); err != nil {
			continue
		}
		if !release.GetPrerelease() || preRelease {
			return release
		}
	}
	return nil
}

func apply(release *github.RepositoryRelease, targetPath string) error {
	version := release.GetTagName()
	checksumName := fmt.Sprintf("stevedore_%s_checksums.txt", version)
	binaryName := fmt.Sprintf("stevedore_%s_%s.zip", runtime.GOOS, runtime.GOARCH)
	var checksumAsset, binaryAsset *github.ReleaseAsset
	for _, asset := range release.Assets {
		switch asset.GetName() {
		case checksumName:
			checksumAsset = asset
		case binaryName:
			binaryAsset = asset
		}
	}
	if checksumAsset == nil || binaryAsset == nil {
		return xerrors.Errorf("failed to find assets for version %s", version)
	}
	log.Info("downloading checksums...")
	checksums, err := parseChecksums(checksumAsset.GetBrowserDownloadURL())
	if err != nil {
		return err
	}
	checksum, ok := checksums[binaryAsset.GetName()]
	if !ok {
		return xerrors.Errorf("failed to find checksum for %s", binaryAsset.GetName())
	}
	digest, err := hex.DecodeString(checksum)
	if err != nil {
		return err
	}
	log.Infof("downloading binary %s...", binaryAsset.GetName())
	resp, err := http.DefaultClient.Get(binaryAsset.GetBrowserDownloadURL())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	log.Infof("upgrading to %s", version)
	return selfupdate.Apply(resp.Body, selfupdate.Options{
		Checksum:   digest,
		TargetPath: targetPath,
	})
}

func parseChecksums(url string) (map[string]string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	sums := make(map[string]string)
	for _, line := range strings.Split(string(b), "\n") {
		if line == "" {
			continue
		}
		parts := strings.Split(line, "  ")
		if len(parts) != 2 {
			return nil, xerrors.Errorf("invalid checksum line: %s", line)
		}
		sums[parts[1]] = parts[0]
	}
	return sums, nil
}
