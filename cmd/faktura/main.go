// Comando faktura: renderizado de facturas a PDF desde la línea de comandos.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/faktura-api/internal/application/dto"
	"github.com/jhoicas/faktura-api/internal/application/render"
	"github.com/jhoicas/faktura-api/internal/domain/document"
	infrapdf "github.com/jhoicas/faktura-api/internal/infrastructure/pdf"
	"github.com/jhoicas/faktura-api/pkg/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:     "faktura",
	Short:   "Generador de facturas PDF (layout polaco/inglés)",
	Version: version,
}

var renderCmd = &cobra.Command{
	Use:   "render [facturas.json]",
	Short: "Renderiza una factura o un lote de facturas a un único PDF",
	Long: `Lee un archivo JSON con una factura (objeto) o un lote (arreglo de
objetos) y produce un único documento PDF con una página por factura.`,
	Example: `  # Una factura por página, salida en faktura.pdf
  faktura render facturas.json

  # Salida explícita y moneda alternativa
  faktura render facturas.json -o lote.pdf --currency EUR`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("out", "o", "faktura.pdf", "Ruta del PDF de salida")
	renderCmd.Flags().String("currency", "PLN", "Moneda mostrada en la sección de información")
	renderCmd.Flags().String("footer-text", "", "Texto de pie de página (vacío = sin pie)")
	renderCmd.Flags().String("footer-align", "center", "Alineación del pie: left, center, right")
	renderCmd.Flags().String("strip-country", "PL", "Prefijo de país a retirar del NIP del comprador")
	renderCmd.Flags().String("log-level", "info", "Nivel de log: trace, debug, info, warn, error")
}

func runRender(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("out")
	currency, _ := cmd.Flags().GetString("currency")
	footerText, _ := cmd.Flags().GetString("footer-text")
	footerAlign, _ := cmd.Flags().GetString("footer-align")
	stripCountry, _ := cmd.Flags().GetString("strip-country")
	logLevel, _ := cmd.Flags().GetString("log-level")

	log := logger.New(logger.Config{Env: "development", Level: logLevel})

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("leer archivo de facturas: %w", err)
	}
	invoices, err := dto.ParseInvoices(raw)
	if err != nil {
		return err
	}

	opts := document.Options{
		Currency:          currency,
		StripBuyerCountry: stripCountry,
	}
	if footerText != "" {
		opts.Footer = &document.FooterConfig{
			Text:  footerText,
			Align: document.ParseAlignment(footerAlign),
		}
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("crear PDF de salida: %w", err)
	}
	defer out.Close()

	uc := render.NewUseCase(infrapdf.NewFactory(), log)
	if err := uc.Render(cmd.Context(), invoices, opts, out); err != nil {
		return err
	}

	log.Info().
		Str("out", outPath).
		Int("facturas", len(invoices)).
		Msg("PDF generado")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
