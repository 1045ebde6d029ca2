package cmd

import (
	"context"
	"fmt"

	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/net/ghttp"
	"github.com/gogf/gf/v2/os/gcmd"

	authCtl "knscribe-service/internal/controller/auth"
	transcriptionCtl "knscribe-service/internal/controller/transcription"
	"knscribe-service/internal/middlewares"
	"knscribe-service/internal/service/archive"
	authSvc "knscribe-service/internal/service/auth"
	"knscribe-service/internal/service/media"
	"knscribe-service/internal/service/store"
	transcriptionSvc "knscribe-service/internal/service/transcription"
	"knscribe-service/internal/service/whisper"
)

var (
	Main = gcmd.Command{
		Name:  "main",
		Usage: "main",
		Brief: "start http server",
		Func: func(ctx context.Context, parser *gcmd.Parser) (err error) {
			fmt.Println(`
 _  __      ____            _ _
| |/ /_ __ / ___|  ___ _ __(_) |__   ___
| ' /| '_ \\___ \ / __| '__| | '_ \ / _ \
| . \| | | |___) | (__| |  | | |_) |  __/
|_|\_\_| |_|____/ \___|_|  |_|_.__/ \___|
			`)
			fmt.Println("KnScribe Transcription Service")
			fmt.Println()

			logger := g.Log()

			if err := store.Init(ctx); err != nil {
				return err
			}
			if err := authSvc.SeedUsers(ctx, loadSeedUsers(ctx)); err != nil {
				logger.Warningf(ctx, "user seeding failed: %v", err)
			}

			// The model load is a one-time blocking startup cost; the server
			// must not accept requests until it succeeds.
			engine := whisper.NewEngine(whisper.Options{
				BinPath:   g.Cfg().MustGet(ctx, "transcribe.whisper.bin", "whisper.cpp").String(),
				ModelPath: g.Cfg().MustGet(ctx, "transcribe.whisper.model").String(),
				Language:  g.Cfg().MustGet(ctx, "transcribe.language", "pt").String(),
			})
			if err := engine.Init(ctx); err != nil {
				return err
			}

			prober := media.NewProber(g.Cfg().MustGet(ctx, "transcribe.ffprobe", "ffprobe").String())
			converter := media.NewConverter(
				g.Cfg().MustGet(ctx, "transcribe.ffmpeg", "ffmpeg").String(),
				media.ConvertOptions{},
			)

			archiver, err := archive.NewFromConfig(ctx)
			if err != nil {
				logger.Warningf(ctx, "archive init failed, archiving disabled: %v", err)
			} else if archiver != nil {
				archiver.Start(ctx)
			}
			var pipelineArchiver transcriptionSvc.Archiver
			if archiver != nil {
				pipelineArchiver = archiver
			}

			st := store.New()
			pipeline := transcriptionSvc.NewPipeline(
				transcriptionSvc.Options{
					WorkDir:  g.Cfg().MustGet(ctx, "transcribe.uploadDir", "./storage/uploads").String(),
					Language: g.Cfg().MustGet(ctx, "transcribe.language", "pt").String(),
					Timeout:  g.Cfg().MustGet(ctx, "transcribe.timeout", "10m").Duration(),
				},
				prober, converter, engine, st, pipelineArchiver,
			)

			tokens := authSvc.NewTokenManager(
				g.Cfg().MustGet(ctx, "auth.secret").String(),
				g.Cfg().MustGet(ctx, "auth.tokenTTL", "24h").Duration(),
			)

			s := g.Server()
			s.SetPort(g.Cfg().MustGet(ctx, "server.port").Int())
			s.SetClientMaxBodySize(1024 * 1024 * 1024)
			s.Use(middlewares.BrotliMiddleware)
			s.Use(ghttp.MiddlewareCORS)

			oai := s.GetOpenApi()
			oai.Config.CommonResponse = ghttp.DefaultHandlerResponse{}
			oai.Config.CommonResponseDataField = "Data"
			s.SetOpenApiPath(g.Cfg().MustGet(ctx, "server.openapiPath").String())
			s.SetSwaggerPath(g.Cfg().MustGet(ctx, "server.swaggerPath").String())

			s.Group("/api", func(group *ghttp.RouterGroup) {
				group.Middleware(middlewares.Response)
				group.Group("/auth", func(authGroup *ghttp.RouterGroup) {
					authGroup.Bind(authCtl.NewV1(tokens))
				})
				group.Group("/", func(apiGroup *ghttp.RouterGroup) {
					apiGroup.Middleware(middlewares.Auth(tokens))
					apiGroup.Bind(transcriptionCtl.NewV1(pipeline, st))
				})
			})

			s.Run()
			return nil
		},
	}
)

func loadSeedUsers(ctx context.Context) []authSvc.SeedUser {
	var users []authSvc.SeedUser
	if err := g.Cfg().MustGet(ctx, "auth.seedUsers").Structs(&users); err != nil {
		g.Log().Warningf(ctx, "cannot parse auth.seedUsers: %v", err)
		return nil
	}
	return users
}
