package dirbuild

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var profileSuffixes = []string{".yaml", ".yml", ".json"}

// Profiles lists the profile names found in the profiles sub-directory,
// in directory order.
func (d *Dir) Profiles() ([]string, error) {
	dirEnts, err := os.ReadDir(filepath.Join(d.Root, "profiles"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	res := []string{}
	for _, dirEnt := range dirEnts {
		if dirEnt.IsDir() {
			continue
		}
		fName := dirEnt.Name()
		ext := filepath.Ext(fName)
		if !isProfileSuffix(ext) {
			continue
		}
		res = append(res, strings.TrimSuffix(fName, ext))
	}
	return res, nil
}

func isProfileSuffix(ext string) bool {
	for _, s := range profileSuffixes {
		if s == ext {
			return true
		}
	}
	return false
}

// profilePath resolves profile as a file path first, then as a name in
// the profiles sub-directory.
func (d *Dir) profilePath(profile string) (string, error) {
	st, err := os.Stat(profile)
	if err == nil && !st.IsDir() {
		return profile, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return "", err
	}
	for _, suffix := range profileSuffixes {
		path := filepath.Join(d.Root, "profiles", profile+suffix)
		st, err := os.Stat(path)
		if err == nil {
			if st.IsDir() {
				return "", fmt.Errorf("profile %s is a directory", path)
			}
			return path, nil
		}
		if !os.IsNotExist(err) {
			return "", err
		}
	}
	return "", fmt.Errorf("no profile %q in %s: %w", profile, filepath.Join(d.Root, "profiles"), os.ErrNotExist)
}
