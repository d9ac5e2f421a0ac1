package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/LeonSantana7/forms/api"
	"github.com/LeonSantana7/forms/schema"
	"github.com/LeonSantana7/forms/store"
	"github.com/LeonSantana7/forms/utils"
)

func initConfig() {
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug("no .env file loaded")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("survey")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("mongo.database", "survey")
	viper.SetDefault("stats.fetch_limit", api.DefaultStatsFetchLimit)
	viper.SetDefault("log.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		log.WithError(err).Info("no config file found, using environment only")
	}
}

func initLog() {
	level, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if file := viper.GetString("log.file"); file != "" {
		rotator := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   true,
		}
		log.SetOutput(io.MultiWriter(os.Stdout, rotator))
	}
}

func main() {
	initConfig()
	initLog()
	utils.InitI18NBundle()

	connURI := viper.GetString("mongo.conn")
	if connURI == "" {
		log.Fatal("mongo.conn is not configured")
	}
	adminToken := viper.GetString("admin.token")
	if adminToken == "" {
		log.Fatal("admin.token is not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connURI))
	if err != nil {
		cancel()
		log.WithError(err).Fatal("connect to mongo")
	}
	if err := client.Ping(ctx, nil); err != nil {
		cancel()
		log.WithError(err).Fatal("ping mongo")
	}
	cancel()

	database := viper.GetString("mongo.database")
	if err := schema.NewMongoDBIndexer(connURI, database).IndexAll(); err != nil {
		log.WithError(err).Fatal("create mongo indexes")
	}

	server := api.NewServer(store.NewMongoStore(client, database), api.Config{
		AdminToken:      adminToken,
		StatsFetchLimit: viper.GetInt64("stats.fetch_limit"),
		TraceMode:       viper.GetBool("server.trace"),
	})

	go func() {
		addr := viper.GetString("server.addr")
		log.WithField("addr", addr).Info("survey api listening")
		if err := server.Run(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("fail to shutdown server")
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.WithError(err).Error("fail to disconnect mongo")
	}
}
