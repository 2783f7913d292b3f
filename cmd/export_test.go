package cmd

import (
	"os"
	"path"
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/tealeg/xlsx"
)

type Sale struct {
	ID       int
	Region   string
	Salesman string
	Total    float64
	SoldAt   time.Time
}

func TestExportTableToFile(t *testing.T) {
	dbFile := path.Join(os.TempDir(), "oniryk-export-test.db")
	outFile := path.Join(os.TempDir(), "oniryk-export-test.xlsx")
	defer os.Remove(dbFile)
	defer os.Remove(outFile)

	db, err := gorm.Open("sqlite3", dbFile)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	db.AutoMigrate(&Sale{})
	db.Create(&Sale{Region: "North", Salesman: "John", Total: 1250.5,
		SoldAt: time.Date(2006, 1, 2, 0, 0, 0, 0, time.UTC)})
	db.Create(&Sale{Region: "North", Salesman: "Jane", Total: 2000,
		SoldAt: time.Date(2006, 1, 3, 0, 0, 0, 0, time.UTC)})

	if err := exportTableToFile(db, "sales", outFile); err != nil {
		t.Fatal(err)
	}

	file, err := xlsx.OpenFile(outFile)
	if err != nil {
		t.Fatalf("Exported workbook cannot be opened: %s", err.Error())
	}
	rows := file.Sheets[0].Rows
	// Header plus two data rows.
	if expected, got := 3, len(rows); got != expected {
		t.Fatalf("Sheet has %d rows, expected: %d", got, expected)
	}
	if expected, got := "region", rows[0].Cells[1].Value; got != expected {
		t.Errorf("Header cell == %q, expected: %q", got, expected)
	}
	if expected, got := "John", rows[1].Cells[2].Value; got != expected {
		t.Errorf("Salesman cell == %q, expected: %q", got, expected)
	}
	if expected, got := "2000", rows[2].Cells[3].Value; got != expected {
		t.Errorf("Total cell == %q, expected: %q", got, expected)
	}
}
