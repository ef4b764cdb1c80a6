package constants

const (
	AppName            = "bidaya"
	Version            = "v0.3.0"
	DefaultHome        = "~/.config/bidaya"
	DefaultKeyringUser = "remote-connection"
	SessionKeyringUser = "session-user"

	// StorageKey is the fixed key the state document lives under in every local backend
	StorageKey = "bidayat_os_state"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// MaxPrayerHistory is the number of daily prayer logs retained in the rolling window
	MaxPrayerHistory = 30

	// Backend names
	BackendJSON   = "json"
	BackendSQLite = "sqlite"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "bidaya-"
	BackupFileSuffix = ".json"
	ExportFilePrefix = "bidaya-backup-"

	// Document file names under the home directory
	JSONFileName   = "bidaya.json"
	SQLiteFileName = "bidaya.db"

	// Prayer times collaborator. The fallback coordinates are Jakarta.
	DefaultPrayerAPI  = "https://api.aladhan.com/v1"
	FallbackLatitude  = -6.2088
	FallbackLongitude = 106.8456
	PrayerCalcMethod  = 2

	// Notify constants
	NotifierLockfileName   = "bidaya-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.bidaya"
	TrayExecutablePrefix   = "bidaya-tray"
)
