package selfupdate

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// binaryName is the executable inside every release archive.
const binaryName = "webdev100"

// Stage names reported through Update's callback, in order.
const (
	StageCheck    = "check"
	StageDownload = "download"
	StageVerify   = "verify"
	StageExtract  = "extract"
	StageApply    = "apply"
	StageDone     = "done"
)

type UpdateInput struct {
	CurrentVersion string
	// TargetVersion skips the release lookup when set.
	TargetVersion string
}

type UpdateProgress struct {
	Stage   string
	Message string
}

// Update downloads the target release for this platform, verifies it against
// the release's checksums.txt and swaps it in for the running executable.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, report func(UpdateProgress)) error {
	if canonical(input.CurrentVersion) == "" {
		return ErrDevBuild
	}
	if report == nil {
		report = func(UpdateProgress) {}
	}

	tag := input.TargetVersion
	if tag == "" {
		report(UpdateProgress{Stage: StageCheck, Message: "Checking for latest version..."})
		res, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if !res.UpdateAvailable {
			return ErrAlreadyLatest
		}
		tag = res.LatestVersion
	}

	asset, err := assetNameFor(c.goos, c.goarch)
	if err != nil {
		return err
	}

	report(UpdateProgress{Stage: StageDownload, Message: fmt.Sprintf("Downloading %s...", tag)})
	archive, err := c.fetch(ctx, c.assetURL(tag, asset))
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}

	report(UpdateProgress{Stage: StageVerify, Message: "Verifying checksum..."})
	sums, err := c.fetch(ctx, c.assetURL(tag, "checksums.txt"))
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	want, ok := parseChecksums(sums)[asset]
	if !ok {
		return fmt.Errorf("no checksum for %s in checksums.txt", asset)
	}
	if err := verifyChecksum(archive, want); err != nil {
		return err
	}

	report(UpdateProgress{Stage: StageExtract, Message: "Extracting binary..."})
	bin, err := extractBinary(archive, asset)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	report(UpdateProgress{Stage: StageApply, Message: "Applying update..."})
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	sum := sha256.Sum256(bin)
	if err := replaceExecutable(target, bin, sum[:]); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	report(UpdateProgress{Stage: StageDone, Message: fmt.Sprintf("Updated to %s", tag)})
	return nil
}

func (c *Checker) assetURL(tag, name string) string {
	return fmt.Sprintf("%s/%s/%s/releases/download/%s/%s",
		strings.TrimRight(c.downloadBaseURL, "/"), c.owner, c.repo, tag, name)
}

// assetNameFor mirrors the goreleaser archive names.
func assetNameFor(goos, goarch string) (string, error) {
	if goos == "darwin" {
		return binaryName + "_Darwin_all.tar.gz", nil
	}

	var osName, ext string
	switch goos {
	case "linux":
		osName, ext = "Linux", ".tar.gz"
	case "windows":
		osName, ext = "Windows", ".zip"
	default:
		return "", fmt.Errorf("unsupported operating system: %s", goos)
	}

	arch, ok := map[string]string{"amd64": "x86_64", "arm64": "arm64", "386": "i386"}[goarch]
	if !ok {
		return "", fmt.Errorf("unsupported architecture: %s", goarch)
	}
	return fmt.Sprintf("%s_%s_%s%s", binaryName, osName, arch, ext), nil
}

func (c *Checker) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// parseChecksums reads "<sha256>  <file>" lines. Anything else is skipped.
func parseChecksums(data []byte) map[string]string {
	sums := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 2 {
			sums[fields[1]] = fields[0]
		}
	}
	return sums
}

func verifyChecksum(data []byte, wantHex string) error {
	got := sha256.Sum256(data)
	if gotHex := hex.EncodeToString(got[:]); !strings.EqualFold(gotHex, wantHex) {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksum, wantHex, gotHex)
	}
	return nil
}

// replaceExecutable writes bin next to target and renames it into place,
// keeping target's permissions.
func replaceExecutable(target string, bin, wantSum []byte) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}

	tmpDir, err := os.MkdirTemp(filepath.Dir(target), "."+binaryName+"-update-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	staged := filepath.Join(tmpDir, binaryName+"-new")
	if err := os.WriteFile(staged, bin, 0o600); err != nil {
		return fmt.Errorf("write staged binary: %w", err)
	}

	// Re-read what landed on disk before trusting it.
	written, err := os.ReadFile(staged)
	if err != nil {
		return fmt.Errorf("re-read staged binary: %w", err)
	}
	if sum := sha256.Sum256(written); !bytes.Equal(sum[:], wantSum) {
		return fmt.Errorf("%w: staged binary changed after write", ErrChecksum)
	}

	if err := os.Chmod(staged, info.Mode()); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(staged, target); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
