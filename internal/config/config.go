package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port     int    `yaml:"port"`
	GinMode  string `yaml:"gin_mode"`
	PhotoDir string `yaml:"photo_dir"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	AccessTTL  string `yaml:"access_ttl"`
	RefreshTTL string `yaml:"refresh_ttl"`
}

type OTPConfig struct {
	TTL          string `yaml:"ttl"`
	Length       int    `yaml:"length"`
	MaxAttempts  int    `yaml:"max_attempts"`
	ResendWindow string `yaml:"resend_window"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

// OfficeFileConfig is the geo-fence block of the config file. Each field can
// be overridden via OFFICE_LATITUDE / OFFICE_LONGITUDE / OFFICE_RADIUS_KM.
type OfficeFileConfig struct {
	Latitude       float64 `yaml:"latitude"`
	Longitude      float64 `yaml:"longitude"`
	RadiusKm       float64 `yaml:"radius_km"`
	ArrivalRadiusM float64 `yaml:"arrival_radius_m"`
	LegacyBox      bool    `yaml:"legacy_box"`
}

type ConfigFile struct {
	App         AppConfig        `yaml:"app"`
	Database    DatabaseConfig   `yaml:"database"`
	Redis       RedisConfig      `yaml:"redis"`
	JWT         JWTConfig        `yaml:"jwt"`
	OTP         OTPConfig        `yaml:"otp"`
	Twilio      TwilioConfig     `yaml:"twilio"`
	Casbin      CasbinConfig     `yaml:"casbin"`
	Office      OfficeFileConfig `yaml:"office"`
	AdminEmails []string         `yaml:"admin_emails"`
}

// Office is the resolved geo-fence configuration, loaded once at startup
// and immutable afterwards.
type Office struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	// ArrivalRadiusM bounds task arrival verification (haversine, meters).
	ArrivalRadiusM float64
	// LegacyBox switches attendance fencing to the historical degree-box
	// comparison instead of haversine distance.
	LegacyBox bool
}

// Defaults applied when neither config file nor environment sets the office.
const (
	DefaultOfficeLatitude  = 26.7428378
	DefaultOfficeLongitude = 83.3797713
	DefaultOfficeRadiusKm  = 0.2
	DefaultArrivalRadiusM  = 111.0
)

type Config struct {
	Port             string
	GinMode          string
	PhotoDir         string
	DSN              string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	JWTSecret        string
	JWTIssuer        string
	AccessTTL        time.Duration
	RefreshTTL       time.Duration
	OTP_TTL          time.Duration
	OTP_Length       int
	OTP_MaxAttempts  int
	OTP_ResendWindow time.Duration
	TwilioSID        string
	TwilioToken      string
	TwilioFrom       string
	CasbinModelPath  string
	Office           Office
	AdminEmails      []string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envFloat(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	accTTL, err := time.ParseDuration(configFile.JWT.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}

	refTTL, err := time.ParseDuration(configFile.JWT.RefreshTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT refresh TTL: %w", err)
	}

	otpTTL, err := time.ParseDuration(configFile.OTP.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	resWnd, err := time.ParseDuration(configFile.OTP.ResendWindow)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP resend window: %w", err)
	}

	office := resolveOffice(configFile.Office)

	photoDir := configFile.App.PhotoDir
	if photoDir == "" {
		photoDir = "uploads"
	}

	adminEmails := make([]string, 0, len(configFile.AdminEmails))
	for _, e := range configFile.AdminEmails {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			adminEmails = append(adminEmails, e)
		}
	}

	return &Config{
		Port:             fmt.Sprintf("%d", configFile.App.Port),
		GinMode:          configFile.App.GinMode,
		PhotoDir:         env("PHOTO_DIR", photoDir),
		DSN:              configFile.Database.DSN,
		RedisAddr:        configFile.Redis.Addr,
		RedisPassword:    configFile.Redis.Password,
		RedisDB:          configFile.Redis.DB,
		JWTSecret:        configFile.JWT.Secret,
		JWTIssuer:        configFile.JWT.Issuer,
		AccessTTL:        accTTL,
		RefreshTTL:       refTTL,
		OTP_TTL:          otpTTL,
		OTP_Length:       configFile.OTP.Length,
		OTP_MaxAttempts:  configFile.OTP.MaxAttempts,
		OTP_ResendWindow: resWnd,
		TwilioSID:        configFile.Twilio.AccountSID,
		TwilioToken:      configFile.Twilio.AuthToken,
		TwilioFrom:       configFile.Twilio.FromNumber,
		CasbinModelPath:  configFile.Casbin.ModelPath,
		Office:           office,
		AdminEmails:      adminEmails,
	}, nil
}

// resolveOffice layers environment overrides on the file values and falls
// back to the documented defaults when both are unset.
func resolveOffice(file OfficeFileConfig) Office {
	lat := file.Latitude
	if lat == 0 {
		lat = DefaultOfficeLatitude
	}
	lng := file.Longitude
	if lng == 0 {
		lng = DefaultOfficeLongitude
	}
	radius := file.RadiusKm
	if radius == 0 {
		radius = DefaultOfficeRadiusKm
	}
	arrival := file.ArrivalRadiusM
	if arrival == 0 {
		arrival = DefaultArrivalRadiusM
	}

	return Office{
		Latitude:       envFloat("OFFICE_LATITUDE", lat),
		Longitude:      envFloat("OFFICE_LONGITUDE", lng),
		RadiusKm:       envFloat("OFFICE_RADIUS_KM", radius),
		ArrivalRadiusM: envFloat("OFFICE_ARRIVAL_RADIUS_M", arrival),
		LegacyBox:      env("OFFICE_LEGACY_BOX", "") == "true" || file.LegacyBox,
	}
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
