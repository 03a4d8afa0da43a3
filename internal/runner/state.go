package runner

import (
	"crypto/sha256"
	"fmt"
	"os"
)

// fileState identifies the content of an input file. Hashing the bytes catches edits that
// keep the size and modification time.
type fileState struct {
	size int64
	sum  [sha256.Size]byte
}

type inputState struct {
	tokenList   fileState
	rewardsList fileState
}

func (r *Runner) snapshot() (inputState, error) {
	tokenList, err := readState(r.cfg.TokenListPath)
	if err != nil {
		return inputState{}, fmt.Errorf("read token list state: %w", err)
	}
	rewardsList, err := readState(r.cfg.RewardsListPath)
	if err != nil {
		return inputState{}, fmt.Errorf("read rewards list state: %w", err)
	}
	return inputState{tokenList: tokenList, rewardsList: rewardsList}, nil
}

func readState(path string) (fileState, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return fileState{}, err
	}
	if stat.IsDir() {
		return fileState{}, fmt.Errorf("%s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fileState{}, err
	}
	return fileState{size: int64(len(data)), sum: sha256.Sum256(data)}, nil
}
