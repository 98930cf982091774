// Package wallpaper discovers wallpaper images and picks them at random.
package wallpaper

import (
	"fmt"
	iofs "io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/iro"
)

// Pattern matches the image formats the sampler decodes, in any
// subdirectory.
const Pattern = "**/*.{jpg,jpeg,png,webp,bmp,gif,JPG,JPEG,PNG,WEBP,BMP,GIF}"

// Find returns every image under dir, sorted.
func Find(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("wallpaper dir %s: %v: %w", dir, err, iro.ErrFileAccess)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("wallpaper dir %s: not a directory: %w", dir, iro.ErrFileAccess)
	}

	var matches []string
	err = doublestar.GlobWalk(os.DirFS(dir), Pattern, func(path string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		matches = append(matches, filepath.Join(dir, filepath.FromSlash(path)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %v: %w", dir, err, iro.ErrFileAccess)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no images in %s: %w", dir, iro.ErrFileAccess)
	}
	slices.Sort(matches)
	return matches, nil
}

// Picker chooses wallpapers. The zero value uses a randomly seeded source.
type Picker struct {
	Rand *rand.Rand
}

// Pick returns n wallpapers, one per monitor. Picks are distinct while
// there are enough candidates, then repeat.
func (p Picker) Pick(candidates []string, n int) []string {
	if len(candidates) == 0 || n <= 0 {
		return nil
	}
	perm := p.perm(len(candidates))
	out := make([]string, n)
	for i := range out {
		out[i] = candidates[perm[i%len(perm)]]
	}
	return out
}

func (p Picker) perm(n int) []int {
	if p.Rand != nil {
		return p.Rand.Perm(n)
	}
	return rand.Perm(n)
}
