package app

import (
	"io"
	"os"
	"strings"

	"musicplayer/pkg/common"
	"musicplayer/pkg/settings"

	"github.com/spf13/afero"
	"gopkg.in/natefinch/lumberjack.v2"
	"k8s.io/klog/v2"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	cfgFile string
)

const envPrefix = "MUSIC"

func init() {
	cobra.OnInitialize(initConfig)
	cobra.MousetrapHelpText = ""

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Music Player version {{printf \"%s\" .Version}}\n")

	flags := rootCmd.Flags()
	persistent := rootCmd.PersistentFlags()

	persistent.StringVarP(&cfgFile, "config", "c", "", "config file path")

	addServerFlags(flags)
}

func addServerFlags(flags *pflag.FlagSet) {
	flags.StringP("address", "a", "0.0.0.0", "address to listen on")
	flags.StringP("port", "p", "5000", "port to listen on")
	flags.StringP("log", "l", "stdout", "log output")
	flags.StringP("baseurl", "b", "", "base url")
	flags.String("static-dir", "./static", "directory served under the static url")
	flags.String("static-url", "/static", "url prefix of static assets")
	flags.String("template", "./templates/index.html", "landing page template")
	flags.String("video-dir", "", "directory holding .mp4 videos (disabled if empty)")
	flags.String("default-folder", "dian_gun", "folder key active at start")
	flags.String("check-schedule", "@every 5m", "cron schedule of the folder availability check (disabled if empty)")
}

var rootCmd = &cobra.Command{
	Use:   "musicplayer",
	Short: "Lists the songs of a selectable music folder",
	Long: `Music Player serves a landing page, lists the .mp3 files of the
active music folder and lets clients switch the active folder.

If you don't set "config", it will look for a configuration file called
.musicplayer.{json, toml, yaml, yml} in the following directories:

- ./
- $HOME/
- /etc/musicplayer/

The precedence of the configuration values are as follows:

- flags
- environment variables
- configuration file
- defaults

The environment variables are prefixed by "MUSIC_" followed by the option
name in caps with dashes replaced by underscores. So to set "video-dir" via
an env variable, you should set MUSIC_VIDEO_DIR.

The folder registry can only be set in the configuration file:

folders:
  - key: dian_gun
    path: ./music/dian_gun
  - key: da_si_ma
    path: ./music/da_si_ma`,
	Run: func(cmd *cobra.Command, args []string) {
		klog.Infoln(cfgFile)

		server, err := getRunParams(cmd.Flags())
		checkErr(err)

		setupLog(server.Log)
		klog.Infof("server settings: %s", common.ToJson(server))

		checkErr(runServer(cmd.Context(), server, afero.NewOsFs()))
	},
}

func getRunParams(flags *pflag.FlagSet) (*settings.Server, error) {
	server := settings.NewDefaultServer()

	params := map[string]*string{
		"address":        &server.Address,
		"port":           &server.Port,
		"log":            &server.Log,
		"baseurl":        &server.BaseURL,
		"static-dir":     &server.StaticDir,
		"static-url":     &server.StaticURL,
		"template":       &server.TemplatePath,
		"video-dir":      &server.VideoDir,
		"default-folder": &server.DefaultFolder,
		"check-schedule": &server.CheckSchedule,
	}
	for key, dst := range params {
		if val, set := getParamB(flags, key); set {
			*dst = val
		}
	}

	if v.IsSet("folders") {
		var folders []settings.Folder
		if err := v.UnmarshalKey("folders", &folders); err != nil {
			return nil, err
		}
		server.Folders = folders
	}

	server.Clean()
	if err := server.Validate(); err != nil {
		return nil, err
	}
	return server, nil
}

// getParamB returns a parameter as a string and a boolean to tell if it is different from the default
//
// NOTE: we could simply bind the flags to viper and use IsSet.
// Although there is a bug on Viper that always returns true on IsSet
// if a flag is binded. Our alternative way is to manually check
// the flag and then the value from env/config/gotten by viper.
// https://github.com/spf13/viper/pull/331
func getParamB(flags *pflag.FlagSet, key string) (string, bool) {
	value, _ := flags.GetString(key)

	// If set on Flags, use it.
	if flags.Changed(key) {
		return value, true
	}

	// If set through viper (env, config), return it.
	if v.IsSet(key) {
		return v.GetString(key), true
	}

	// Otherwise use default value on flags.
	return value, false
}

func setupLog(logMethod string) {
	klog.Infof("Klog set to %s", logMethod)
	klog.SetOutput(logOutput(logMethod))
}

func logOutput(logMethod string) io.Writer {
	switch logMethod {
	case "stdout":
		return os.Stdout
	case "stderr":
		return os.Stderr
	case "none", "":
		return io.Discard
	default:
		return &lumberjack.Logger{
			Filename:   logMethod,
			MaxSize:    100,
			MaxAge:     14,
			MaxBackups: 10,
		}
	}
}

func initConfig() {
	if cfgFile == "" {
		home, err := homedir.Dir()
		checkErr(err)
		v.AddConfigPath(".")
		v.AddConfigPath(home)
		v.AddConfigPath("/etc/musicplayer/")
		v.SetConfigName(".musicplayer")
	} else {
		v.SetConfigFile(cfgFile)
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigParseError); ok {
			panic(err)
		}
		cfgFile = "No config file used"
		v.AutomaticEnv() // forced
	} else {
		cfgFile = "Using config file: " + v.ConfigFileUsed()
	}

	klog.Infof("=== ENVIRONMENT VARIABLES ===")
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, envPrefix+"_") {
			klog.Infof("[ENV] %s", e)
		}
	}

	klog.Infof("=== VIPER SETTINGS ===")
	for _, key := range v.AllKeys() {
		klog.Infof("[VIPER] %s = %v", key, v.Get(key))
	}
}
