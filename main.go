package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/ledanim/api"
	"github.com/matt-g-everett/ledanim/stream"
)

type app struct {
	Config     stream.Config
	Client     mqtt.Client
	Controller *stream.Controller
	Streamer   *stream.Streamer
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	if topic := a.Config.Mqtt.Topics.Control; topic != "" {
		if err := a.Streamer.Subscribe(client, topic); err != nil {
			log.Println(err)
		}
	}
}

func (a *app) run(ctx context.Context) {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}
	defer a.Client.Disconnect(250)

	if err := a.Streamer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Println(err)
	}
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	a.Config, err = stream.ReadConfig(f)
	if err != nil {
		panic(err)
	}
}

func (a *app) buildShow(logger *log.Logger) {
	scenes, err := stream.NewSceneBuilder(a.Config.Pixels).BuildAll(a.Config.Scenes)
	if err != nil {
		panic(err)
	}
	a.Controller = stream.NewController(scenes, a.Config.Loop, a.Config.Transition, logger)
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	listen := flag.String("listen", ":3000", "HTTP control address, empty to disable.")
	verbose := flag.Bool("v", false, "Log timeline transitions.")
	flag.Parse()

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Config: %d scenes, %d pixels at %.0f fps", len(a.Config.Scenes), a.Config.Pixels, a.Config.FrameRate)

	var timelineLog *log.Logger
	if *verbose {
		timelineLog = log.New(os.Stdout, "anim: ", log.LstdFlags)
	}
	a.buildShow(timelineLog)

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("ledanim").
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	client := mqtt.NewClient(options)

	a.Client = client
	sink := stream.MqttSink(client, a.Config.Mqtt.Topics.Stream, a.Config.Mqtt.Qos)
	a.Streamer = stream.NewStreamer(a.Config, a.Controller, sink)

	if *listen != "" {
		go func() {
			if err := api.NewApi(a.Controller).Serve(*listen); err != nil {
				log.Println(err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	a.run(ctx)
}
