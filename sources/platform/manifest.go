package platform

import "time"

var (
	appVersion   = "0.0.0"
	appStartTime = time.Now()
)

func SetAppManifest(version string, startTime time.Time) {
	appVersion = version
	appStartTime = startTime
}

func GetAppVersion() string {
	return appVersion
}

func GetAppUptime() time.Duration {
	return time.Since(appStartTime).Truncate(time.Second)
}
