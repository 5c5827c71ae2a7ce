package upgrade_test

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-github/v62/github"
	"github.com/jarcoal/httpmock"
	"github.com/stevedore-deploy/stevedore/cli/stevedore/upgrade"
	"github.com/stretchr/testify/assert"
)

// sha256("1")
const checksumOfOne = "6b86b273ff34fce19d6b804eff5a3f5747ada4eaa22f1d49c01e52ddb7875b4b"

func TestUpgrade(t *testing.T) {
	binaryAssetName := fmt.Sprintf("stevedore_%s_%s.zip", runtime.GOOS, runtime.GOARCH)
	makeAsset := func(tag, name string) *github.ReleaseAsset {
		return &github.ReleaseAsset{
			Name:               github.String(name),
			BrowserDownloadURL: github.String(fmt.Sprintf("https://localhost/%s/%s", tag, name)),
		}
	}
	makeReleases := func(tags ...string) []*github.RepositoryRelease {
		var releases []*github.RepositoryRelease
		for _, tag := range tags {
			releases = append(releases, &github.RepositoryRelease{
				TagName:    github.String(tag),
				Prerelease: github.Bool(strings.HasSuffix(tag, "-pre")),
				Assets: []*github.ReleaseAsset{
					makeAsset(tag, "stevedore_"+tag+"_checksums.txt"),
					makeAsset(tag, binaryAssetName),
				},
			})
		}
		return releases
	}
	registerRelease := func(tag string) {
		httpmock.RegisterResponder("GET", "https://api.github.com/repos/stevedore-deploy/stevedore/releases",
			httpmock.NewJsonResponderOrPanic(200, makeReleases(tag, "0.1.0")))
		httpmock.RegisterResponder("GET", fmt.Sprintf("https://localhost/%s/stevedore_%s_checksums.txt", tag, tag),
			httpmock.NewStringResponder(200, checksumOfOne+"  "+binaryAssetName))
		httpmock.RegisterResponder("GET", fmt.Sprintf("https://localhost/%s/%s", tag, binaryAssetName),
			httpmock.NewStringResponder(200, "1"))
	}
	t.Run("replaces the binary with the newer release", func(t *testing.T) {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		registerRelease("0.2.0")
		target := filepath.Join(t.TempDir(), "stevedore")
		assert.NoError(t, os.WriteFile(target, []byte("0.1.0"), 0755))
		err := upgrade.Upgrade(&upgrade.Input{
			CurrentVersion: "0.1.0",
			TargetPath:     target,
		})
		assert.NoError(t, err)
		content, err := os.ReadFile(target)
		assert.NoError(t, err)
		assert.Equal(t, "1", string(content))
	})
	t.Run("no update when already on the latest", func(t *testing.T) {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		registerRelease("0.2.0")
		target := filepath.Join(t.TempDir(), "stevedore")
		assert.NoError(t, os.WriteFile(target, []byte("0.2.0"), 0755))
		err := upgrade.Upgrade(&upgrade.Input{
			CurrentVersion: "0.2.0",
			TargetPath:     target,
		})
		assert.NoError(t, err)
		content, _ := os.ReadFile(target)
		assert.Equal(t, "0.2.0", string(content))
	})
	t.Run("skips pre-releases unless asked for", func(t *testing.T) {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("GET", "https://api.github.com/repos/stevedore-deploy/stevedore/releases",
			httpmock.NewJsonResponderOrPanic(200, makeReleases("0.3.0-pre", "0.2.0")))
		httpmock.RegisterResponder("GET", "https://localhost/0.2.0/stevedore_0.2.0_checksums.txt",
			httpmock.NewStringResponder(200, checksumOfOne+"  "+binaryAssetName))
		httpmock.RegisterResponder("GET", "https://localhost/0.2.0/"+binaryAssetName,
			httpmock.NewStringResponder(200, "1"))
		target := filepath.Join(t.TempDir(), "stevedore")
		assert.NoError(t, os.WriteFile(target, []byte("0.1.0"), 0755))
		err := upgrade.Upgrade(&upgrade.Input{
			CurrentVersion: "0.1.0",
			TargetPath:     target,
		})
		assert.NoError(t, err)
		content, _ := os.ReadFile(target)
		assert.Equal(t, "1", string(content))
	})
	t.Run("fails when no release has a semver tag", func(t *testing.T) {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("GET", "https://api.github.com/repos/stevedore-deploy/stevedore/releases",
			httpmock.NewJsonResponderOrPanic(200, []*github.RepositoryRelease{
				{TagName: github.String("nightly")},
			}))
		err := upgrade.Upgrade(&upgrade.Input{CurrentVersion: "0.1.0"})
		assert.EqualError(t, err, "failed to find latest release")
	})
}
