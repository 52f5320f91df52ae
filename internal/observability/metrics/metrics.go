package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes application-level instruments.
type Metrics struct {
	csvImports       metric.Int64Counter
	invoicesComposed metric.Int64Counter
	pdfExports       metric.Int64Counter
	emailsSent       metric.Int64Counter
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				if log != nil {
					log.Info("shutting down meter provider")
				}
				return provider.Shutdown(ctx)
			},
		})
	}

	if log != nil {
		log.Info("metrics initialized",
			zap.String("endpoint", cfg.ExporterEndpoint),
			zap.String("protocol", cfg.ExporterProtocol),
		)
	}

	return provider, nil
}

// New configures the domain metrics instruments.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "invoicedesk"
	}
	meter := provider.Meter(name)

	csvImports, err := meter.Int64Counter("invoicedesk_csv_imports_total")
	if err != nil {
		return nil, err
	}
	invoicesComposed, err := meter.Int64Counter("invoicedesk_invoices_composed_total")
	if err != nil {
		return nil, err
	}
	pdfExports, err := meter.Int64Counter("invoicedesk_pdf_exports_total")
	if err != nil {
		return nil, err
	}
	emailsSent, err := meter.Int64Counter("invoicedesk_emails_sent_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		csvImports:       csvImports,
		invoicesComposed: invoicesComposed,
		pdfExports:       pdfExports,
		emailsSent:       emailsSent,
	}, nil
}

// RecordCSVImport increments the CSV load count.
func (m *Metrics) RecordCSVImport(ctx context.Context, clients int) {
	if m == nil {
		return
	}
	m.csvImports.Add(ctx, 1, metric.WithAttributes(
		attribute.Int("clients", clients),
	))
}

// RecordInvoiceComposed increments the compose count per output kind.
func (m *Metrics) RecordInvoiceComposed(ctx context.Context, output string) {
	if m == nil {
		return
	}
	m.invoicesComposed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("output", strings.TrimSpace(output)),
	))
}

// RecordPDFExport increments the PDF export count.
func (m *Metrics) RecordPDFExport(ctx context.Context) {
	if m == nil {
		return
	}
	m.pdfExports.Add(ctx, 1)
}

// RecordEmailSent increments the SMTP delivery count.
func (m *Metrics) RecordEmailSent(ctx context.Context) {
	if m == nil {
		return
	}
	m.emailsSent.Add(ctx, 1)
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	protocol = strings.ToLower(strings.TrimSpace(protocol))
	switch protocol {
	case "http", "http/protobuf":
		opts := []otlpmetrichttp.Option{}
		if endpoint != "" {
			opts = append(opts, otlpmetrichttp.WithEndpoint(endpoint))
		}
		return otlpmetrichttp.New(context.Background(), opts...)
	case "grpc", "grpc/protobuf", "":
		opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithInsecure()}
		if endpoint != "" {
			opts = append(opts, otlpmetricgrpc.WithEndpoint(endpoint))
		}
		return otlpmetricgrpc.New(context.Background(), opts...)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol %q", protocol)
	}
}
