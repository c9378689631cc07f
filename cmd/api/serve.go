package main

import (
	"beaticafe/internal/cart"
	"beaticafe/internal/handler"
	"beaticafe/internal/infra/catalogdata"
	"beaticafe/internal/infra/llm"
	"beaticafe/internal/knowledge"
	"beaticafe/internal/server"
	"beaticafe/internal/usecase"
	"beaticafe/internal/validator"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer func() { _ = e.log.Sync() }()

			st, err := openStores(e)
			if err != nil {
				return err
			}
			cafe, err := catalogdata.Cafe()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			idGen := &uuidGenerator{}
			clock := &realClock{}

			catalogUC, err := usecase.NewCatalogUsecase(ctx, st.products)
			if err != nil {
				return err
			}
			cartUC := usecase.NewCartUsecase(cart.NewRegistry(cartLogger(e.log)), catalogUC)
			authUC := usecase.NewAuthUsecase(
				st.users,
				validator.NewAuthValidator(st.users),
				usecase.NewJWTIssuer(e.cfg.JWTSecret, e.cfg.AccessTokenTTL),
				idGen,
				clock,
				cartUC,
				e.cfg.AuthMockDelay,
			)
			contactUC := usecase.NewContactUsecase(st.contacts, validator.NewContactValidator(), idGen, clock)

			if e.cfg.GroqAPIKey == "" {
				e.log.Warn("GROQ_API_KEY not set, chat will answer with the fallback message")
			}
			groq := llm.NewGroqClient(llm.Config{
				APIKey:  e.cfg.GroqAPIKey,
				BaseURL: e.cfg.GroqBaseURL,
				Model:   e.cfg.GroqModel,
			})
			chatUC := usecase.NewChatUsecase(groq, knowledge.NewBase(cafe, catalogUC.Products()), e.log.Named("chat"))

			echoSrv := server.New(e.cfg, e.log, st.users, server.Handlers{
				Menu:    handler.NewMenuHandler(catalogUC),
				Info:    handler.NewInfoHandler(cafe),
				Cart:    handler.NewCartHandler(cartUC),
				Auth:    handler.NewAuthHandler(authUC),
				Contact: handler.NewContactHandler(contactUC),
				Chat:    handler.NewChatHandler(chatUC),
			})

			e.log.Info("catalog loaded",
				zap.Int("products", len(catalogUC.Products())),
				zap.String("source", string(e.cfg.CatalogSource)),
			)
			return server.Run(ctx, echoSrv, e.cfg.Addr(), e.log)
		},
	}
}
