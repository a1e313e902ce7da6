// Command tempo-stream plays a looping light show on a timeline tree and
// publishes every resolved object state to an MQTT broker. An HTTP API on
// the configured address controls playback.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/fogleman/ease"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/tempo"
	"github.com/phanxgames/tempo/api"
	"github.com/phanxgames/tempo/stream"
)

func main() {
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	cfg, err := stream.LoadConfig(*configPath)
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	level, _ := cfg.Log.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("tempo-stream", "err", err)
		os.Exit(1)
	}
}

func run(cfg stream.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	options := mqtt.NewClientOptions().
		AddBroker(cfg.Mqtt.URL).
		SetClientID(cfg.Mqtt.ClientID).
		SetUsername(cfg.Mqtt.Username).
		SetPassword(cfg.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetAutoReconnect(true).
		SetOnConnectHandler(func(mqtt.Client) {
			logger.Info("mqtt connected", "broker", cfg.Mqtt.URL)
		}).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			logger.Warn("mqtt connection lost", "err", err)
		})
	client := mqtt.NewClient(options)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	defer client.Disconnect(250)

	root := buildShow(client, cfg.Mqtt, logger)
	root.Play()

	driver := stream.NewDriver(root, cfg.Driver.TickRate)
	driver.SetLogger(logger)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	api.NewServer(driver).SetupRoutes(r)

	srv := &http.Server{Addr: cfg.API.Addr, Handler: r}
	go func() {
		logger.Info("api listening", "addr", cfg.API.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("api server", "err", err)
			stop()
		}
	}()

	err := driver.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if serr := srv.Shutdown(shutdownCtx); serr != nil {
		logger.Warn("api shutdown", "err", serr)
	}
	return err
}

// buildShow creates a looping eight-second show: a lamp cycling through
// colors, and a dimmer track with a pulse sub-timeline running at double
// speed after a one second offset.
func buildShow(client stream.Client, cfg stream.MQTTConfig, logger *slog.Logger) *tempo.Timeline {
	root := tempo.NewTimeline("show")
	root.SetLogger(logger)
	root.SetDuration(8)
	_ = root.SetInfiniteLoop()

	lampPub := stream.NewPublisher(client, cfg, "lamp")
	lampPub.SetLogger(logger)
	lamp := tempo.NewObject("lamp", lampPub)

	color := tempo.NewColorProperty(colorful.Color{})
	for i, hex := range []string{"#ff2010", "#ffb000", "#20ff60", "#2040ff", "#ff2010"} {
		c, _ := colorful.Hex(hex)
		color.AddKeyframe(tempo.At(float64(i)*2, c, tempo.Eased))
	}
	lamp.Attach("color", color)

	level := tempo.AddProperty(lamp, "level", 0.0)
	level.AddKeyframe(tempo.At(0, 0.2, tempo.Linear))
	level.AddKeyframe(tempo.At(2, 1.0, tempo.CatmullRom))
	level.AddKeyframe(tempo.At(4, 0.4, tempo.CatmullRom))
	level.AddKeyframe(tempo.At(6, 0.9, tempo.CatmullRom))
	level.AddKeyframe(tempo.At(8, 0.2, tempo.CatmullRom))
	root.AddObject(lamp)

	pulse := tempo.NewTimeline("pulse")
	pulse.SetStartTime(1)
	pulse.SetTimeScale(2)
	pulse.SetDuration(1)
	_ = pulse.SetInfiniteLoop()

	dimPub := stream.NewPublisher(client, cfg, "dimmer")
	dimPub.SetLogger(logger)
	dimmer := tempo.NewObject("dimmer", dimPub)
	value := tempo.AddProperty(dimmer, "value", 0.0)
	tempo.Tween(value, 0, 0.5, 0.0, 1.0, ease.OutQuad)
	tempo.TweenTo(value, 1, 0.0, ease.InQuad)
	pulse.AddObject(dimmer)
	root.AddChild(pulse)

	return root
}
