package corpus

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadMember returns the raw contents of a single member of the tar.gz
// archive without unpacking anything to disk.
func ReadMember(archivePath, memberName string) ([]byte, error) {
	members, err := readMembers(archivePath, memberName)
	if err != nil {
		return nil, err
	}
	return members[memberName], nil
}

// ReadTask extracts the train and test files of a task/variant pair in a
// single pass over the archive.
func ReadTask(archivePath string, taskID int, variant string) (train, test []byte, err error) {
	trainPath, testPath, err := TaskFiles(taskID, variant)
	if err != nil {
		return nil, nil, err
	}

	members, err := readMembers(archivePath, trainPath, testPath)
	if err != nil {
		return nil, nil, err
	}
	return members[trainPath], members[testPath], nil
}

// readMembers scans the archive once and collects the wanted members.
// Every requested member must be present.
func readMembers(archivePath string, memberNames ...string) (map[string][]byte, error) {
	file, err := os.Open(archivePath) // #nosec G304 -- path is derived from the configured data directory
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus archive %s: %w", archivePath, err)
	}
	defer func() { _ = file.Close() }()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus archive %s as gzip: %w", archivePath, err)
	}
	defer func() { _ = gzReader.Close() }()

	wanted := make(map[string]bool, len(memberNames))
	for _, name := range memberNames {
		wanted[name] = true
	}

	members := make(map[string][]byte, len(memberNames))
	tarReader := tar.NewReader(gzReader)
	for len(members) < len(wanted) {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read corpus archive %s: %w", archivePath, err)
		}

		// Some tar writers prefix member names with "./".
		name := strings.TrimPrefix(header.Name, "./")
		if !wanted[name] {
			continue
		}

		contents, err := io.ReadAll(tarReader)
		if err != nil {
			return nil, fmt.Errorf("failed to read member %s of corpus archive %s: %w", name, archivePath, err)
		}
		members[name] = contents
	}

	for _, name := range memberNames {
		if _, ok := members[name]; !ok {
			return nil, fmt.Errorf("member %s not found in corpus archive %s", name, archivePath)
		}
	}
	return members, nil
}
