package types

type DBConfig struct {
	URI             string
	DBName          string
	Timeout         int
	MaxPoolSize     uint64
	IdleConnTimeout int
}
