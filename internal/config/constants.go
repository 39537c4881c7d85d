package config

import "time"

// app constants
const (
	AppName        = "dockhand"
	AppDescription = "Docker log console and command registry"

	LogLevel  = "info"
	LogFormat = "console"

	Version = "0.3.0"
)

// config file constants
const (
	FileName  = "dockhand.yaml"
	EnvFile   = ".env"
	EnvPrefix = "DOCKHAND"
	EnvConfig = "DOCKHAND_CONFIG"
)

// viewer constants
const (
	ViewerBuffer = 5000
	ViewerTail   = 200
	FlashTimeout = 2 * time.Second
)

// source constants
const (
	MaxLineSize   = 1 << 20
	ReadChunkSize = 32 * 1024
)

// store constants
const (
	StorePath    = "dockhand.db"
	StoreTimeout = 1 * time.Second
)

// server constants
const (
	ServerAddr      = "127.0.0.1:9010"
	ServerURL       = "http://127.0.0.1:9010"
	ShutdownTimeout = 5 * time.Second
	RequestTimeout  = 10 * time.Second
	TokenTTL        = 24 * time.Hour
	ServerStreams   = 16
	StreamWait      = 5 * time.Second
)
