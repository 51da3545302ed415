package contentsync

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/conorfennell/pianopace/internal/curriculum"
	"github.com/conorfennell/pianopace/internal/gitsource"
	"github.com/conorfennell/pianopace/internal/logger"
)

// Options says where to find a content pack. With neither Dir nor GitURL set
// the base catalog is used as is. With GitURL set, Dir is read relative to
// the checkout.
type Options struct {
	Dir      string
	GitURL   string
	CacheDir string
}

// Load resolves the content pack, parses every week in it and overlays the
// weeks on base. Any invalid file fails the whole load.
func Load(ctx context.Context, log *logger.Logger, base *curriculum.Catalog, opts Options) (*curriculum.Catalog, error) {
	dir := opts.Dir
	if opts.GitURL != "" {
		localPath, err := checkoutDir(opts.CacheDir, opts.GitURL)
		if err != nil {
			return nil, err
		}
		rev, err := gitsource.Sync(ctx, log, opts.GitURL, localPath)
		if err != nil {
			return nil, err
		}
		log = log.With("revision", rev)
		dir = filepath.Join(localPath, opts.Dir)
	}
	if dir == "" {
		log.Info("using built-in curriculum", "weeks", base.Len(), "fingerprint", base.Fingerprint())
		return base, nil
	}

	weeks, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	catalog, err := base.Overlay(weeks...)
	if err != nil {
		return nil, fmt.Errorf("content pack %s: %w", dir, err)
	}
	log.Info("content pack loaded",
		"path", dir,
		"authored_weeks", len(weeks),
		"weeks", catalog.Len(),
		"fingerprint", catalog.Fingerprint(),
	)
	return catalog, nil
}

// LoadDir parses every .yaml or .yml file under dir as a week.
func LoadDir(dir string) ([]curriculum.Week, error) {
	var (
		weeks []curriculum.Week
		errs  []error
	)
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		name := strings.ToLower(d.Name())
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			return nil
		}
		w, err := parseFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("parsing %s: %w", path, err))
			return nil
		}
		weeks = append(weeks, w)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("read content pack %s: %w", dir, walkErr)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return weeks, nil
}

func parseFile(path string) (curriculum.Week, error) {
	f, err := os.Open(path)
	if err != nil {
		return curriculum.Week{}, err
	}
	defer f.Close()
	return curriculum.ParseWeek(f)
}

// checkoutDir names the cache directory for a pack URL: host, then the
// repository path without its .git suffix. https, http, ssh and scp-style
// (user@host:owner/repo) URLs are accepted.
func checkoutDir(cacheDir, repoURL string) (string, error) {
	var host, repoPath string
	if u, err := url.Parse(repoURL); err == nil && (u.Scheme == "https" || u.Scheme == "http" || u.Scheme == "ssh") {
		host, repoPath = u.Hostname(), u.Path
	} else if _, rest, ok := strings.Cut(repoURL, "@"); ok {
		host, repoPath, _ = strings.Cut(rest, ":")
	}
	repoPath = strings.Trim(strings.TrimSuffix(repoPath, ".git"), "/")
	if host == "" || repoPath == "" {
		return "", fmt.Errorf("unsupported content pack URL %q", repoURL)
	}
	return filepath.Join(cacheDir, host, filepath.FromSlash(repoPath)), nil
}
