package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/jhoicas/faktura-api/internal/domain/document"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	Render RenderConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RenderConfig valores por defecto de maquetación aplicados cuando la
// petición no los trae.
type RenderConfig struct {
	Currency          string
	FooterText        string
	FooterAlign       string
	StripBuyerCountry string
}

// Options convierte los defaults configurados a opciones de documento.
func (c RenderConfig) Options() document.Options {
	opts := document.Options{
		Currency:          c.Currency,
		StripBuyerCountry: c.StripBuyerCountry,
	}
	if c.FooterText != "" {
		opts.Footer = &document.FooterConfig{
			Text:  c.FooterText,
			Align: document.ParseAlignment(c.FooterAlign),
		}
	}
	return opts
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, RENDER_CURRENCY, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno (Viper las lee automáticamente si AutomaticEnv está activo)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "faktura-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Render: RenderConfig{
			Currency:          getString(v, "RENDER_CURRENCY", "PLN"),
			FooterText:        getString(v, "RENDER_FOOTER_TEXT", ""),
			FooterAlign:       getString(v, "RENDER_FOOTER_ALIGN", "center"),
			StripBuyerCountry: getString(v, "RENDER_STRIP_BUYER_COUNTRY", "PL"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		return v.GetInt(key)
	}
	return def
}
