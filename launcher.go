package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/Vect0r2/manuelbot/cache"
	"github.com/Vect0r2/manuelbot/helpers"
	"github.com/Vect0r2/manuelbot/metrics"
	"github.com/Vect0r2/manuelbot/rest"
	"github.com/Vect0r2/manuelbot/version"
	"github.com/bwmarrin/discordgo"
	"github.com/emicklei/go-restful"
	"github.com/getsentry/raven-go"
	"github.com/go-redis/redis"
	"github.com/kz/discordrus"
	"github.com/sirupsen/logrus"
)

// Entrypoint
func main() {
	var err error

	log := logrus.New()
	log.Out = os.Stdout
	log.Level = logrus.DebugLevel
	log.Formatter = &logrus.TextFormatter{ForceColors: true, FullTimestamp: true, TimestampFormat: time.RFC3339}
	log.Hooks = make(logrus.LevelHooks)
	cache.SetLogger(log)

	// Read config
	helpers.LoadConfig("config.json")
	config := helpers.GetConfig()

	// Check if the bot is being debugged
	if debug, ok := config.Path("debug").Data().(bool); ok && debug {
		helpers.DEBUG_MODE = true
	}

	if helpers.ConfigString("logging.discord_webhook") != "" {
		log.Hooks.Add(discordrus.NewHook(
			helpers.ConfigString("logging.discord_webhook"),
			logrus.ErrorLevel,
			&discordrus.Opts{
				Username:           "Logging",
				DisableTimestamp:   false,
				TimestampFormat:    "Jan 2 15:04:05.00000",
				EnableCustomColors: true,
				CustomLevelColors: &discordrus.LevelColors{
					Error: 13631488,
					Panic: 13631488,
					Fatal: 13631488,
				},
			},
		))
	}

	log.WithField("module", "launcher").Info("Booting manuelbot...")

	// Read i18n
	helpers.LoadTranslations("_assets/i18n.json")

	// Read bot admins
	helpers.LoadBotAdmins()

	// Show version
	version.DumpInfo()

	// Start metric server
	metrics.Init()

	// Make the randomness more random
	rand.Seed(time.Now().UTC().UnixNano())

	// Call home
	if helpers.ConfigString("sentry") != "" {
		log.WithField("module", "launcher").Info("[SENTRY] Calling home...")
		err = raven.SetDSN(helpers.ConfigString("sentry"))
		if err != nil {
			panic(err)
		}
		if version.BOT_VERSION != "UNSET" {
			raven.SetRelease(version.BOT_VERSION)
		}
	}

	// Connect to mongodb
	log.WithField("module", "launcher").Info("Opening database connection...")
	helpers.ConnectMDb(
		helpers.ConfigString("mongodb.url"),
		helpers.ConfigString("mongodb.db"),
	)

	// Close DB when main dies
	defer helpers.GetMDbSession().Close()

	// Connecting to redis
	log.WithField("module", "launcher").Info("Connecting to redis...")
	redisClient := redis.NewClient(&redis.Options{
		Addr:     helpers.ConfigString("redis.address"),
		Password: "", // no password set
		DB:       0,  // use default DB
	})
	cache.SetRedisClient(redisClient)

	// Connect and add event handlers
	discordgo.Logger = func(msgL, caller int, format string, a ...interface{}) {
		pc, file, line, _ := runtime.Caller(caller)

		files := strings.Split(file, "/")
		file = files[len(files)-1]

		name := runtime.FuncForPC(pc).Name()
		fns := strings.Split(name, ".")
		name = fns[len(fns)-1]

		msg := format
		if strings.Contains(msg, "%") {
			msg = fmt.Sprintf(format, a...)
		}

		switch msgL {
		case discordgo.LogError:
			log.WithField("module", "discordgo").Errorf("%s:%d:%s() %s", file, line, name, msg)
		case discordgo.LogWarning:
			log.WithField("module", "discordgo").Warnf("%s:%d:%s() %s", file, line, name, msg)
		case discordgo.LogInformational:
			log.WithField("module", "discordgo").Infof("%s:%d:%s() %s", file, line, name, msg)
		case discordgo.LogDebug:
			log.WithField("module", "discordgo").Debugf("%s:%d:%s() %s", file, line, name, msg)
		}
	}

	log.WithField("module", "launcher").Info("Connecting manuelbot to discord...")
	discord, err := discordgo.New("Bot " + helpers.ConfigString("discord.token"))
	if err != nil {
		panic(err)
	}

	discord.Lock()
	discord.Debug = false
	discord.LogLevel = discordgo.LogInformational
	discord.StateEnabled = true
	discord.Identify.Intents = discordgo.IntentsAllWithoutPrivileged
	discord.Unlock()

	discord.AddHandlerOnce(BotOnReady)
	discord.AddHandler(BotOnMessageCreate)
	discord.AddHandlerOnce(metrics.OnReady)
	discord.AddHandler(metrics.OnMessageCreate)

	// Connect to discord
	err = discord.Open()
	if err != nil {
		raven.CaptureErrorAndWait(err, nil)
		panic(err)
	}

	// Open REST API
	wsContainer := restful.NewContainer()

	for _, service := range rest.NewRestServices() {
		wsContainer.Add(service)
	}
	wsContainer.Filter(func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		now := time.Now()
		chain.ProcessFilter(req, resp)
		log.WithField("module", "launcher").Info(fmt.Sprintf("received api request: %s %s%s (took %v)",
			req.Request.Method, req.Request.Host, req.Request.URL, time.Since(now)))
	})

	restAddress := helpers.ConfigString("rest.address")
	if restAddress == "" {
		restAddress = "localhost:2021"
	}
	go func() {
		server := &http.Server{Addr: restAddress, Handler: wsContainer}
		log.Fatal(server.ListenAndServe())
	}()
	log.WithField("module", "launcher").Info("REST API listening on " + restAddress)

	// Make a channel that waits for a os signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Wait until the os wants us to shutdown
	<-shutdown

	log.WithField("module", "launcher").Info("manuelbot is stopping")
	log.WithField("module", "launcher").Info("Disconnecting bot discord session...")
	discord.Close()
}
