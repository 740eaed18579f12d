//go:build !amd64 && !arm64

package platform

func detectCPU() (VectorLevel, []string) {
	return LevelScalar, nil
}
