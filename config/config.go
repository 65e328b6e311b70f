// Package config はアプリケーション設定を管理します。
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config はアプリケーション全体の設定を保持します。
type Config struct {
	// データディレクトリのパス
	DataDir string

	// ログディレクトリのパス
	LogDir string

	// HTTPサーバーのポート
	Port string

	// API認証キー
	APIKey string
}

// Load は.envファイルと環境変数から設定を読み込み、Configインスタンスを生成します。
func Load() (*Config, error) {
	// .envファイルの読み込み（存在しない場合は環境変数のみ使用）
	_ = godotenv.Load()

	// データディレクトリの設定
	dataDir := os.Getenv("HEATMAP_DATA_DIR")
	if dataDir == "" {
		dataDir = filepath.Join(".", "data")
	}

	// ログディレクトリの設定
	logDir := os.Getenv("HEATMAP_LOG_DIR")
	if logDir == "" {
		logDir = filepath.Join(dataDir, "logs")
	}

	// ポートの設定
	port := os.Getenv("HEATMAP_SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	// API認証キーの設定（デフォルトキーは設定しない）
	apiKey := os.Getenv("HEATMAP_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("HEATMAP_API_KEY is not set")
	}

	return &Config{
		DataDir: dataDir,
		LogDir:  logDir,
		Port:    port,
		APIKey:  apiKey,
	}, nil
}
