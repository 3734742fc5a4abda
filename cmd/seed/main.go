// seed carga un archivo de ítems (JSON, YAML o CSV) en el almacén configurado
// bajo STORE_KEY, como el arreglo JSON que sirve la API.
//
// Uso: go run ./cmd/seed -file items.csv [-format csv] [-charset latin1] [-dry-run]
// El driver se toma de STORE_DRIVER; memory no persiste y solo admite -dry-run.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/inventario-tiers/internal/domain/entity"
	"github.com/jhoicas/inventario-tiers/internal/infrastructure/itemfile"
	"github.com/jhoicas/inventario-tiers/internal/infrastructure/kvstore"
	"github.com/jhoicas/inventario-tiers/pkg/config"
	"github.com/jhoicas/inventario-tiers/pkg/logger"
)

func main() {
	file := flag.String("file", "items.json", "archivo de ítems (.json, .yaml, .yml, .csv)")
	format := flag.String("format", "", "forzar formato: json, yaml o csv (vacío = por extensión)")
	charset := flag.String("charset", "utf-8", "codificación del archivo: utf-8, latin1, windows-1252")
	dryRun := flag.Bool("dry-run", false, "imprimir el JSON resultante sin escribir en el almacén")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})

	items, err := readItems(*file, *format, *charset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer ítems: %v\n", err)
		os.Exit(1)
	}
	value, err := itemfile.Encode(items)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Serializar ítems: %v\n", err)
		os.Exit(1)
	}

	if *dryRun {
		fmt.Println(value)
		return
	}
	if cfg.Store.Driver == config.DriverMemory {
		fmt.Fprintln(os.Stderr, "STORE_DRIVER=memory no persiste; use redis, postgres o sqlite, o -dry-run")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := kvstore.Open(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir almacén: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.Put(ctx, cfg.Store.Key, value); err != nil {
		fmt.Fprintf(os.Stderr, "Guardar ítems: %v\n", err)
		os.Exit(1)
	}

	log.Info().
		Str("driver", cfg.Store.Driver).
		Str("key", cfg.Store.Key).
		Int("items", len(items)).
		Msg("ítems cargados")
}

func readItems(path, format, charset string) ([]entity.InventoryItem, error) {
	if format == "" {
		return itemfile.DecodeFile(path, charset)
	}
	f, err := itemfile.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return itemfile.Decode(in, f, charset)
}
