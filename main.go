// Package main はアプリケーションのエントリーポイントを提供します。
package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/revers3ntropy/svelte-heatmap/api"
	"github.com/revers3ntropy/svelte-heatmap/config"
	"github.com/revers3ntropy/svelte-heatmap/db"
	"github.com/revers3ntropy/svelte-heatmap/logging"
	"github.com/revers3ntropy/svelte-heatmap/store"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:          "svelte-heatmap",
	Short:        "Calendar heatmap data-model server",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 設定の読み込み
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logging.Init(verbose, cfg.LogDir)

		// SQLiteストアの初期化（マイグレーション関数を渡す）
		sqliteStore, err := store.NewSQLiteStore(cfg.DataDir, db.Migrate)
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize SQLite store")
			return err
		}
		defer sqliteStore.Close()

		// サーバーインスタンスの作成と起動
		server := api.NewServer(sqliteStore, cfg)
		log.Info().Str("port", cfg.Port).Msg("Server starting")
		return server.Run(":" + cfg.Port)
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
