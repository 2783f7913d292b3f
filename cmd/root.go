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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oniryk-labs/oniryk-xlsx/writer"
)

var (
	cfgFile string
	debug   bool
	verbose bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "oniryk-xlsx [flags] CSV_FILE...",
	Short: "Converts CSV files into streaming-written XLSX workbooks",
	Long: `Converts CSV files into single-worksheet XLSX workbooks.

The worksheet is serialized in bounded-size batches through a shared string
table, so arbitrarily large inputs can be converted without unbounded memory
growth. Empty CSV fields become empty cells, numeric fields become inline
numbers, fields of the form yyyy-mm-dd become date cells rendered with the
workbook's single date style, and everything else is deduplicated through
the shared string table.

Column widths can be overridden with repeated --width COL:WIDTH flags (COL
is 0-based; for the same COL the last flag wins). With --upload BUCKET/KEY
the built workbook is also pushed to S3.`,
	Run: convertFiles,
}

func convertFiles(cmd *cobra.Command, args []string) {

	debugCmd(cmd)
	if len(args) == 0 {
		log.Fatal("Missing the input CSV file name.")
	}
	output := flagString(cmd, "output")
	if output != "" && len(args) > 1 {
		log.Fatal("--output can be used with a single input file only.")
	}

	for _, fileName := range args {
		out := output
		if out == "" {
			out = strings.TrimSuffix(fileName, filepath.Ext(fileName)) + ".xlsx"
		}
		if err := convertFile(cmd, fileName, out); err != nil {
			log.Fatalf("Failed to convert %q: %s", fileName, err.Error())
		}
	}
}

func convertFile(cmd *cobra.Command, fileName, output string) error {

	f, err := os.Open(fileName)
	if err != nil {
		return err
	}
	defer f.Close()

	sst := writer.NewStringTable()
	sheet := writer.NewSheetWriter(sst)
	sheet.SetColumnWidths(parseWidths(flagStringArray(cmd, "width"))...)

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		sheet.AddRow(recordToRow(record))
	}

	if verbose {
		log.Infof("Converting %q: %d rows", fileName, sheet.RowsCount())
	}

	buf, err := writer.Build(sheet, sst)
	if err != nil {
		return err
	}
	unique := sst.Size()
	sst.Destroy()

	if err := os.WriteFile(output, buf, 0644); err != nil {
		return err
	}
	log.Infof("Written %q (%d bytes, %d shared strings)", output, len(buf), unique)

	if upload := flagString(cmd, "upload"); upload != "" {
		return uploadWorkbook(cmd, buf, upload, output)
	}
	return nil
}

// recordToRow maps CSV fields to typed cells. The mapping is best-effort:
// anything that does not look like a number or a yyyy-mm-dd date stays text.
func recordToRow(record []string) writer.Row {
	row := make(writer.Row, len(record))
	for i, field := range record {
		if field == "" {
			continue
		}
		if n, err := strconv.ParseFloat(field, 64); err == nil {
			row[i] = n
			continue
		}
		if t, err := time.Parse("2006-01-02", field); err == nil {
			row[i] = t
			continue
		}
		row[i] = field
	}
	return row
}

// parseWidths converts "COL:WIDTH" flag values into column width pairs.
// Malformed entries are skipped, not rejected.
func parseWidths(values []string) (widths []writer.ColumnWidth) {
	for _, v := range values {
		parts := strings.SplitN(v, ":", 2)
		if len(parts) != 2 {
			log.Warnf("Ignoring malformed width %q, expected COL:WIDTH.", v)
			continue
		}
		col, err := strconv.Atoi(parts[0])
		if err != nil {
			log.Warnf("Ignoring malformed width %q: %s", v, err.Error())
			continue
		}
		width, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			log.Warnf("Ignoring malformed width %q: %s", v, err.Error())
			continue
		}
		widths = append(widths, writer.ColumnWidth{Col: col, Width: width})
	}
	return
}

func uploadWorkbook(cmd *cobra.Command, buf []byte, target, output string) error {

	parts := strings.SplitN(target, "/", 2)
	bucket := parts[0]
	key := filepath.Base(output)
	if len(parts) == 2 && parts[1] != "" {
		key = parts[1]
	}

	manager := createS3Manager(cmd)
	location, err := manager.Upload(buf, bucket, key)
	if err != nil {
		return fmt.Errorf("upload to %q failed: %w", target, err)
	}
	log.Infof("Uploaded workbook to %s", location)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {

	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.oniryk-xlsx.yaml)")
	RootCmd.PersistentFlags().BoolP("debug", "d", false, "Show debug output.")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose mode. Produce more output about what the program does.")
	RootCmd.PersistentFlags().StringP("aws-region", "r", "us-east-1", "AWS region.")
	RootCmd.PersistentFlags().StringP("aws-profile", "p", "", "AWS credentials profile.")
	RootCmd.PersistentFlags().String("aws-access-key-id", "", "AWS access key ID.")
	RootCmd.PersistentFlags().String("aws-secret-access-key", "", "AWS secret access key.")

	RootCmd.Flags().StringP("output", "o", "", "Output workbook file name (defaults to the input name with .xlsx).")
	RootCmd.Flags().StringArrayP("width", "w", nil, "Column width override COL:WIDTH (0-based column, repeatable).")
	RootCmd.Flags().StringP("upload", "u", "", "Upload the built workbook to BUCKET[/KEY].")

	viper.BindPFlag("aws-region", RootCmd.PersistentFlags().Lookup("aws-region"))
	viper.BindPFlag("aws-profile", RootCmd.PersistentFlags().Lookup("aws-profile"))
	viper.BindPFlag("aws-access-key-id", RootCmd.PersistentFlags().Lookup("aws-access-key-id"))
	viper.BindPFlag("aws-secret-access-key", RootCmd.PersistentFlags().Lookup("aws-secret-access-key"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			log.Fatal(err)
		}

		// Search config in home directory with name ".oniryk-xlsx" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".oniryk-xlsx")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Info("Using config file:", viper.ConfigFileUsed())
	}
}
