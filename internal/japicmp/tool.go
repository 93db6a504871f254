package japicmp

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/huangsam/trustscore/internal/contract"
)

// FileDownloader fetches the japicmp jar itself. *registry.Client satisfies this.
type FileDownloader interface {
	DownloadFile(ctx context.Context, url, path string) error
}

// EnsureTool resolves the japicmp jar to use for comparisons, downloading the
// pinned release into the user cache on first use. It also verifies that a
// JVM is available, since nothing can be compared without one.
func EnsureTool(ctx context.Context, cfg *contract.Config, downloader FileDownloader) (string, error) {
	if _, err := exec.LookPath("java"); err != nil {
		return "", fmt.Errorf("java not found on PATH, required for jar comparison: %w", err)
	}

	if cfg.JapicmpJar != "" {
		if _, err := os.Stat(cfg.JapicmpJar); err != nil {
			return "", fmt.Errorf("configured japicmp jar not found at %s: %w", cfg.JapicmpJar, err)
		}
		return cfg.JapicmpJar, nil
	}

	jarPath := contract.GetJapicmpJarPath(contract.DefaultJapicmpVersion)
	if _, err := os.Stat(jarPath); err == nil {
		return jarPath, nil
	}

	contract.LogInfo(fmt.Sprintf("Downloading japicmp %s to %s", contract.DefaultJapicmpVersion, jarPath))
	if err := downloader.DownloadFile(ctx, toolURL(contract.DefaultJapicmpVersion), jarPath); err != nil {
		return "", fmt.Errorf("downloading japicmp %s: %w", contract.DefaultJapicmpVersion, err)
	}
	return jarPath, nil
}

// toolURL returns the Maven Central location of the standalone japicmp jar.
func toolURL(version string) string {
	return fmt.Sprintf(
		"%s/com/github/siom79/japicmp/japicmp/%s/japicmp-%s-jar-with-dependencies.jar",
		contract.DefaultRegistryURL, version, version)
}
