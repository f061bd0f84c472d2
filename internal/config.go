package internal

import "time"

type Config struct {
	BufferSize           int           `env:"BUFFER_SIZE,required=true"`
	NumberOfWorkers      int           `env:"NUMBER_OF_WORKERS,required=true"`
	SinkTimeout          time.Duration `env:"SINK_TIMEOUT,required=true"`
	MetricInterval       time.Duration `env:"METRIC_INTERVAL,required=true"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,required=true"`
	LowCapacityThreshold int           `env:"LOW_CAPACITY_THRESHOLD,required=true"`
	FeedSize             int           `env:"FEED_SIZE,required=true"`
	LimitRecords         *int          `env:"LIMIT_RECORDS"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true"`
	LogLevel       string `env:"LOG_LEVEL,required=true"`
	DebugPort      int    `env:"DEBUG_PORT,required=true"`

	CurrentUserID      string `env:"CURRENT_USER_ID,required=true"`
	SiteURL            string `env:"SITE_URL,required=true"`
	DefaultSound       string `env:"DEFAULT_SOUND,required=true"`
	AllowPropsOverride bool   `env:"ALLOW_PROPS_OVERRIDE"`
	NativeShell        bool   `env:"NATIVE_SHELL"`
}
