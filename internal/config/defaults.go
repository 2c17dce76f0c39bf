package config

// Video bundle variants. The default bundle carries original-resolution
// videos; 480p is the smaller scaled release.
const (
	VariantDefault = "default"
	Variant480p    = "480p"
)

const (
	defaultRootDir         = "~/.local/share/charades"
	defaultCacheDir        = "~/.cache/charades"
	defaultLogDir          = "~/.local/share/charades/logs"
	defaultAnnotationsURL  = "https://ai2-public-datasets.s3-us-west-2.amazonaws.com/charades/Charades.zip"
	defaultVideosURL       = "https://ai2-public-datasets.s3-us-west-2.amazonaws.com/charades/Charades_v1.zip"
	defaultVideosURL480p   = "https://ai2-public-datasets.s3-us-west-2.amazonaws.com/charades/Charades_v1_480.zip"
	defaultDownloadTimeout = 3600
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			RootDir:  defaultRootDir,
			CacheDir: defaultCacheDir,
			LogDir:   defaultLogDir,
		},
		Dataset: Dataset{
			Variant:         VariantDefault,
			AnnotationsURL:  defaultAnnotationsURL,
			VideosURL:       defaultVideosURL,
			VideosURL480p:   defaultVideosURL480p,
			DownloadTimeout: defaultDownloadTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
