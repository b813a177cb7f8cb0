package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moyoez/katana/api"
	"github.com/moyoez/katana/api/models"
	"github.com/moyoez/katana/api/notifyhub"
	"github.com/moyoez/katana/autostart"
	"github.com/moyoez/katana/notify"
	"github.com/moyoez/katana/pipeline"
	"github.com/moyoez/katana/screenshot"
	"github.com/moyoez/katana/share"
	"github.com/moyoez/katana/tool"
	"github.com/moyoez/katana/transfer"
	"github.com/moyoez/katana/tray"
	"github.com/moyoez/katana/types"
)

func main() {
	cfg := tool.SetFlags()

	// initialize logger
	tool.InitLogger()
	tool.SetLogMode(cfg.Log)

	appCfg, err := tool.LoadConfig(cfg.UseConfigPath)
	if err != nil {
		tool.DefaultLogger.Fatalf("%v", err)
	}
	tool.ApplyFlagOverrides(&appCfg, cfg)

	if err := tool.EnsureHome(tool.AppHomeDir()); err != nil {
		tool.DefaultLogger.Fatalf("Application home is unusable: %v", err)
	}

	rt := tool.ResolveRuntime(cfg.UseNotifierPath)
	tool.DefaultLogger.Infof("%s %s starting (%s, notifier %s)", types.AppName, types.AppVersion, rt.Mode, rt.NotifierPath)

	if _, err := autostart.Apply(rt, tool.GetBoolOption("startAtLogin"), autostart.New(rt)); err != nil {
		tool.DefaultLogger.Warnf("%v", err)
	}

	hub := notifyhub.New()
	gateway := notify.NewForRuntime(rt, appCfg.NotifySocket,
		notify.WithMirror(hub),
		notify.WithDisabled(cfg.SkipNotify),
	)

	uploader := transfer.NewClient(appCfg, tool.GetHttpClient())
	module := screenshot.New(uploader, transfer.NewSystemClipboard(), screenshot.WithCaptureDir(tool.UploadsDir()))

	recent := share.NewRecentStore(appCfg.RecentLimit, share.DefaultRecentTTL)
	orchestrator := pipeline.New(module, module, gateway, pipeline.WithRecorder(recent))
	module.SetCaptureHook(orchestrator.OnFileUploaded)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var apiServer *api.Server
	controller := tray.NewController(tray.NewSystrayPlatform(), orchestrator, tool.NewPreferences(),
		tray.WithRecentSlots(appCfg.RecentLimit),
		tray.WithExitHook(func() {
			if apiServer == nil {
				return
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := apiServer.Shutdown(shutdownCtx); err != nil {
				tool.DefaultLogger.Warnf("[Server] shutdown: %v", err)
			}
		}),
	)
	recent.Subscribe(controller.UpdateRecent)

	models.SetControls(controller)
	models.SetRecentSource(recent)
	models.SetRuntime(rt)
	models.SetNotifyHub(hub)

	if !cfg.SkipApi {
		apiServer = api.NewServer(appCfg.ApiPort)
		go func() {
			if err := apiServer.Start(); err != nil {
				tool.DefaultLogger.Errorf("[Server] local API stopped: %v", err)
			}
		}()
	}

	// blocks on the UI loop until Quit
	controller.Run(ctx)
	module.Wait()
}
