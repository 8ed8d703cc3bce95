package entry

type AlgorithmInfo struct {
	ID    byte
	Name  string
	Label string
}

type About struct {
	Name    string
	Version string

	HeaderSize int
	Overhead   int
	Iterations int
	Algorithms []AlgorithmInfo

	LogPath          string
	DefaultAlgorithm string
}
