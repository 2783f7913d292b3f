package cmd

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oniryk-labs/oniryk-xlsx/s3"
)

func createS3Manager(cmd *cobra.Command) s3.Manager {

	region := flagString(cmd, "aws-region")
	profile := flagString(cmd, "aws-profile")
	accessKeyID := flagString(cmd, "aws-access-key-id")
	secretAccessKey := flagString(cmd, "aws-secret-access-key")

	if accessKeyID != "" && secretAccessKey != "" {
		return s3.NewManagerWithCredentials(accessKeyID, secretAccessKey, region)
	}
	return s3.NewManager(region, profile)
}

func flagString(cmd *cobra.Command, name string) string {

	value := cmd.Flag(name).Value.String()
	if value != "" {
		return value
	}
	conf := viper.Get(name)
	if conf == nil {
		return ""
	}
	return conf.(string)
}

func flagStringArray(cmd *cobra.Command, name string) (val []string) {
	val, err := cmd.Flags().GetStringArray(name)
	if err != nil {
		log.Fatal(err)
	}
	return
}

func flagBool(cmd *cobra.Command, name string) (val bool) {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		log.Fatal(err)
	}
	return
}

func debugCmd(cmd *cobra.Command) {
	debug = flagBool(cmd, "debug")
	verbose = flagBool(cmd, "verbose")

	if debug {
		log.SetLevel(log.DebugLevel)
		title := fmt.Sprintf("Command %q called with flags:", cmd.Name())
		log.Info(title)
		log.Info(strings.Repeat("=", len(title)))
		cmd.DebugFlags()
	}
}
