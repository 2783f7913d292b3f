// Copyright © 2017 Radomirs Cirskis <nad2000@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jinzhu/gorm/dialects/sqlite"

	"github.com/oniryk-labs/oniryk-xlsx/writer"
)

const defaultURL = "sqlite://export.db"

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export TABLE",
	Short: "Exports a database table into an XLSX workbook",
	Long: `Exports a database table into a single-worksheet XLSX workbook.

The first worksheet row carries the column names; NULL values become empty
cells, numeric columns become inline numbers, and timestamp columns become
date cells. Text values are deduplicated through the shared string table,
which keeps workbooks built from repetitive tables small.

Connection should be defined using connection URL notation: DRIVER://CONNECTION_PARAMETERS,
where DRIVER is either "mysql" or "sqlite", e.g., mysql://user:password@/dbname?charset=utf8&parseTime=True&loc=Local.
More examples on connection parameter you can find at: https://github.com/go-sql-driver/mysql#examples.`,
	Run: exportTable,
}

func exportTable(cmd *cobra.Command, args []string) {

	debugCmd(cmd)
	if len(args) != 1 {
		log.Fatal("Expected exactly one table name.")
	}
	table := args[0]

	url := flagString(cmd, "url")
	parts := strings.Split(url, "://")
	if len(parts) < 2 {
		log.Warnf("Driver name not given in %q, assuming 'mysql'.", url)
		parts = []string{"mysql", parts[0]}
	}

	switch parts[0] {
	case "sqlite", "sqlite3":
		log.Debugf("Connecting to Sqlite3 DB: %q.", parts[1])
		parts[0] = "sqlite3"
	case "mysql":
		log.Debugf("Connecting to MySQL DB: %q.", parts[1])
	default:
		log.Fatalf("Unsupported driver: %q. It should be either 'mysql' or 'sqlite'.", parts[0])
	}
	db, err := gorm.Open(parts[0], parts[1])
	if err != nil {
		log.Error(err)
		log.Fatalf("failed to connect database %q", url)
	}
	defer db.Close()

	output := flagString(cmd, "output")
	if output == "" {
		output = table + ".xlsx"
	}
	if err := exportTableToFile(db, table, output); err != nil {
		log.Fatalf("Failed to export %q: %s", table, err.Error())
	}
	log.Infof("Exported table %q to %q", table, output)

	if upload := flagString(cmd, "upload"); upload != "" {
		buf, err := os.ReadFile(output)
		if err != nil {
			log.Fatal(err)
		}
		if err := uploadWorkbook(cmd, buf, upload, output); err != nil {
			log.Fatal(err)
		}
	}
}

// exportTableToFile streams every row of the table into a workbook. Rows are
// appended as they are scanned; the writer batches the actual serialization.
func exportTableToFile(db *gorm.DB, table, output string) error {

	rows, err := db.Table(table).Select("*").Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return err
	}

	sst := writer.NewStringTable()
	sheet := writer.NewSheetWriter(sst)
	defer sst.Destroy()

	header := make(writer.Row, len(columns))
	for i, name := range columns {
		header[i] = name
	}
	sheet.AddRow(header)

	values := make([]interface{}, len(columns))
	pointers := make([]interface{}, len(columns))
	for i := range values {
		pointers[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(pointers...); err != nil {
			return err
		}
		row := make(writer.Row, len(values))
		for i, v := range values {
			row[i] = cellValue(v)
		}
		sheet.AddRow(row)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	buf, err := writer.Build(sheet, sst)
	if err != nil {
		return err
	}
	return os.WriteFile(output, buf, 0644)
}

// cellValue adapts a database/sql scan value to a cell value. Drivers hand
// text back as []byte; everything else the cell encoder handles natively.
func cellValue(v interface{}) interface{} {
	switch v := v.(type) {
	case []byte:
		return string(v)
	case time.Time:
		return v
	default:
		return v
	}
}

func init() {
	RootCmd.AddCommand(exportCmd)
	flags := exportCmd.Flags()

	flags.StringP("url", "U", defaultURL, "Database URL connection string, e.g., mysql://user:password@/dbname?charset=utf8&parseTime=True&loc=Local (More examples at: https://github.com/go-sql-driver/mysql#examples).")
	flags.StringP("output", "o", "", "Output workbook file name (defaults to TABLE.xlsx).")
	flags.StringP("upload", "u", "", "Upload the built workbook to BUCKET[/KEY].")

	viper.BindPFlag("url", flags.Lookup("url"))
}
