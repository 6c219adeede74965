package config

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

const (
	keyWindowWidth  = "window.width"
	keyWindowHeight = "window.height"
	keyWindowTitle  = "window.title"
	keyCanvasMargin = "canvas.margin"
	keyPlaneWidth   = "plane.width"
	keyPlaneHeight  = "plane.height"
	keyThetaStep    = "plane.theta_step"
	keyInitialX     = "initial.x"
	keyInitialY     = "initial.y"
	keyInitialTheta = "initial.theta"
	keyLogLevel     = "log.level"
)

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	setDefaults(viperConfig)
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	// plane.theta_step is read from PLANE_THETA_STEP
	viperConfig.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyWindowWidth, 960)
	v.SetDefault(keyWindowHeight, 560)
	v.SetDefault(keyWindowTitle, "Distance to a Line")
	v.SetDefault(keyCanvasMargin, 30)
	v.SetDefault(keyPlaneWidth, 500)
	v.SetDefault(keyPlaneHeight, 500)
	v.SetDefault(keyThetaStep, 0.05)
	v.SetDefault(keyInitialX, 100)
	v.SetDefault(keyInitialY, 50)
	v.SetDefault(keyInitialTheta, 1.3*math.Pi/4)
	v.SetDefault(keyLogLevel, "debug")
}

// BindFlags registers the command line overrides on fs and binds them to their config keys.
// Call it before fs.Parse.
func (c *Config) BindFlags(fs *pflag.FlagSet) error {
	fs.String("log-level", c.GetLogLevel(), "minimum log level (debug, info, warn, error)")
	if err := c.config.BindPFlag(keyLogLevel, fs.Lookup("log-level")); err != nil {
		return fmt.Errorf("failed to bind log-level flag: %w", err)
	}

	return nil
}

func (c *Config) GetWindowWidth() int {
	return c.config.GetInt(keyWindowWidth)
}

func (c *Config) GetWindowHeight() int {
	return c.config.GetInt(keyWindowHeight)
}

func (c *Config) GetWindowTitle() string {
	return c.config.GetString(keyWindowTitle)
}

// GetCanvasMargin is the gap kept around the drawing surface inside the window.
func (c *Config) GetCanvasMargin() int {
	return c.config.GetInt(keyCanvasMargin)
}

// GetPlaneWidth is the width of the drawing surface in logical units.
func (c *Config) GetPlaneWidth() int {
	return c.config.GetInt(keyPlaneWidth)
}

func (c *Config) GetPlaneHeight() int {
	return c.config.GetInt(keyPlaneHeight)
}

func (c *Config) GetThetaStep() float64 {
	return c.config.GetFloat64(keyThetaStep)
}

func (c *Config) GetInitialX() float64 {
	return c.config.GetFloat64(keyInitialX)
}

func (c *Config) GetInitialY() float64 {
	return c.config.GetFloat64(keyInitialY)
}

func (c *Config) GetInitialTheta() float64 {
	return c.config.GetFloat64(keyInitialTheta)
}

func (c *Config) GetLogLevel() string {
	return c.config.GetString(keyLogLevel)
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
