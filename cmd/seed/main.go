// seed genera un script SQL para poblar el catálogo (categorías y productos)
// a partir de un CSV exportado del sistema anterior. Esos exportes suelen venir
// en ISO-8859-1 (Excel en Windows), por eso el decode explícito.
//
// Formato esperado del CSV (con encabezado):
//
//	nombre;sku;categoria;precio_compra;precio_venta;stock;minimo
//
// Uso: go run ./cmd/seed [ruta/productos.csv]
// Por defecto busca productos.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalog.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func main() {
	csvPath := "productos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	reader := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	reader.Comma = ';'
	reader.FieldsPerRecord = 7

	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(records) < 2 {
		fmt.Fprintln(os.Stderr, "CSV sin filas de datos")
		os.Exit(1)
	}
	records = records[1:] // saltar encabezado

	// Categorías únicas con ID estable por nombre
	catIDs := make(map[string]string)
	for _, rec := range records {
		cat := strings.TrimSpace(rec[2])
		if cat == "" {
			cat = "General"
		}
		if _, ok := catIDs[cat]; !ok {
			catIDs[cat] = uuid.New().String()
		}
	}
	var catNames []string
	for name := range catIDs {
		catNames = append(catNames, name)
	}
	sort.Strings(catNames)

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo inicial (categorías y productos)\n")
	out.WriteString("-- Generado desde " + filepath.Base(csvPath) + "\n\n")

	out.WriteString("-- 1. Categorías\n")
	for _, name := range catNames {
		fmt.Fprintf(out, "INSERT INTO categories (id, name) VALUES ('%s', '%s')\n", catIDs[name], escapeSQL(name))
		out.WriteString("ON CONFLICT (name) DO NOTHING;\n")
	}
	out.WriteString("\n-- 2. Productos\n")

	count := 0
	for _, rec := range records {
		name := strings.TrimSpace(rec[0])
		sku := strings.TrimSpace(rec[1])
		cat := strings.TrimSpace(rec[2])
		if cat == "" {
			cat = "General"
		}
		if name == "" || sku == "" {
			continue
		}
		buying := numericOrZero(rec[3])
		selling := numericOrZero(rec[4])
		stock := intOrZero(rec[5])
		minimum := intOrZero(rec[6])

		fmt.Fprintf(out, "INSERT INTO products (id, name, sku, category_id, buying_price, selling_price, stock_quantity, minimum_stock_level)\n")
		fmt.Fprintf(out, "SELECT '%s', '%s', '%s', id, %s, %s, %d, %d FROM categories WHERE name = '%s'\n",
			uuid.New().String(), escapeSQL(name), escapeSQL(sku), buying, selling, stock, minimum, escapeSQL(cat))
		out.WriteString("ON CONFLICT (sku) DO NOTHING;\n")
		count++
	}

	fmt.Printf("Generado %s: %d categorías, %d productos\n", outPath, len(catNames), count)
}

// findModuleRoot sube desde el directorio actual hasta encontrar go.mod.
func findModuleRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "."
		}
		dir = parent
	}
}

// escapeSQL duplica comillas simples para literales SQL.
func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// numericOrZero valida un decimal con punto o coma; devuelve "0" si no aplica.
func numericOrZero(raw string) string {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if s == "" {
		return "0"
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return "0"
		}
	}
	return s
}

// intOrZero parsea un entero no negativo; devuelve 0 si no aplica.
func intOrZero(raw string) int {
	s := strings.TrimSpace(raw)
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
