// seedgen genera el script SQL de departamentos y usuarios a partir del
// export CSV de RRHH (separado por ';', codificado en ISO-8859-1).
//
// Formato esperado, una fila por usuario, sin cabecera:
//
//	departamento;nombre;rol
//
// El rol es opcional; vacío equivale a MEMBER. Los IDs se generan aquí
// (UUID v4) para que el script sea autocontenido; los usuarios quedan con
// password_hash NULL, es decir, pendientes del primer acceso.
//
// Uso: go run ./cmd/seedgen [ruta/usuarios.csv]
// Escribe: internal/infrastructure/postgres/migrations/002_seed_users.sql
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

type seedUser struct {
	id         string
	department string
	name       string
	role       string
}

func main() {
	csvPath := "usuarios.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// El export de RRHH viene en ISO-8859-1 (tildes, ñ)
	reader := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	deptIDs := make(map[string]string)
	var users []seedUser
	for i, rec := range records {
		if len(rec) < 2 {
			fmt.Fprintf(os.Stderr, "Fila %d: se esperan al menos departamento y nombre\n", i+1)
			os.Exit(1)
		}
		dept := strings.TrimSpace(rec[0])
		name := strings.TrimSpace(rec[1])
		role := "MEMBER"
		if len(rec) > 2 && strings.TrimSpace(rec[2]) != "" {
			role = strings.ToUpper(strings.TrimSpace(rec[2]))
		}
		if role != "MEMBER" && role != "DIRECTOR" {
			fmt.Fprintf(os.Stderr, "Fila %d: rol desconocido %q\n", i+1, role)
			os.Exit(1)
		}
		if dept == "" || name == "" {
			continue
		}
		if _, ok := deptIDs[dept]; !ok {
			deptIDs[dept] = uuid.NewString()
		}
		users = append(users, seedUser{
			id:         uuid.NewString(),
			department: dept,
			name:       name,
			role:       role,
		})
	}

	// Orden estable para diffs reproducibles del script
	var deptNames []string
	for d := range deptIDs {
		deptNames = append(deptNames, d)
	}
	sort.Strings(deptNames)
	sort.Slice(users, func(i, j int) bool {
		if users[i].department != users[j].department {
			return users[i].department < users[j].department
		}
		return users[i].name < users[j].name
	})

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_users.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Departamentos y usuarios iniciales\n")
	out.WriteString("-- Generado desde el export CSV de RRHH (cmd/seedgen)\n\n")

	out.WriteString("-- 1. Departamentos\n")
	for _, d := range deptNames {
		fmt.Fprintf(out, "INSERT INTO departments (id, name) VALUES ('%s', '%s')\n", deptIDs[d], escapeSQL(d))
		out.WriteString("ON CONFLICT (name) DO NOTHING;\n")
	}
	out.WriteString("\n-- 2. Usuarios (password_hash NULL: primer acceso pendiente)\n")
	for _, u := range users {
		fmt.Fprintf(out, "INSERT INTO users (id, department_id, name, role)\n")
		fmt.Fprintf(out, "SELECT '%s', id, '%s', '%s' FROM departments WHERE name = '%s'\n",
			u.id, escapeSQL(u.name), u.role, escapeSQL(u.department))
		out.WriteString("ON CONFLICT (id) DO NOTHING;\n")
	}

	fmt.Printf("Generado %s: %d departamentos, %d usuarios\n", outPath, len(deptNames), len(users))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
