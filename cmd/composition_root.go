package cmd

import (
	"fmt"

	"agrimarket/internal/adapters/out/memstore"
	"agrimarket/internal/adapters/out/postgres"
	"agrimarket/internal/adapters/out/redisstore"
	"agrimarket/internal/core/application/usecases/commands"
	"agrimarket/internal/core/application/usecases/queries"
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config       Config
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	sessionStore ports.SessionStore
	policy       order.PricingPolicy
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	policy, err := buildPricingPolicy(config)
	if err != nil {
		return CompositionRoot{}, err
	}

	sessionStore, err := buildSessionStore(config)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:       config,
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		sessionStore: sessionStore,
		policy:       policy,
	}, nil
}

func (c *CompositionRoot) SessionStore() ports.SessionStore {
	return c.sessionStore
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.OrderTrackingUoWFactory = FuncOrderTrackingUoWFactory(func() commands.OrderTrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderTrackingUoWFactory = FuncOrderTrackingUoWFactory(func() commands.OrderTrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignPartnerCommandHandler() commands.AssignPartnerCommandHandler {
	var f commands.OrderTrackingUoWFactory = FuncOrderTrackingUoWFactory(func() commands.OrderTrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignPartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateStartPickupSessionCommandHandler() commands.StartPickupSessionCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartPickupSessionCommandHandler(f, c.sessionStore)
}

func (c *CompositionRoot) CreateCheckItemCommandHandler() commands.CheckItemCommandHandler {
	return commands.NewCheckItemCommandHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateVerifyLineItemCommandHandler() commands.VerifyLineItemCommandHandler {
	return commands.NewVerifyLineItemCommandHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateCapturePhotoCommandHandler() commands.CapturePhotoCommandHandler {
	return commands.NewCapturePhotoCommandHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateCaptureSignatureCommandHandler() commands.CaptureSignatureCommandHandler {
	return commands.NewCaptureSignatureCommandHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateAdvanceStageCommandHandler() commands.AdvanceStageCommandHandler {
	return commands.NewAdvanceStageCommandHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateRetreatStageCommandHandler() commands.RetreatStageCommandHandler {
	return commands.NewRetreatStageCommandHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateCompletePickupCommandHandler() commands.CompletePickupCommandHandler {
	var f commands.OrderTrackingUoWFactory = FuncOrderTrackingUoWFactory(func() commands.OrderTrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompletePickupCommandHandler(f, c.sessionStore, c.config.EtaWindow)
}

func (c *CompositionRoot) CreateGetTrackingViewQueryHandler() queries.GetTrackingViewQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetTrackingViewQueryHandler(uow.OrderRepository(), uow.TrackingRepository())
}

func (c *CompositionRoot) CreateGetRoleViewQueryHandler() queries.GetRoleViewQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetRoleViewQueryHandler(uow.OrderRepository(), uow.TrackingRepository())
}

func buildPricingPolicy(config Config) (order.PricingPolicy, error) {
	taxRate, err := decimal.NewFromString(config.TaxRate)
	if err != nil {
		return order.PricingPolicy{}, fmt.Errorf("invalid tax rate %q: %w", config.TaxRate, err)
	}

	deliveryFee, err := parseMoney("delivery fee", config.DeliveryFee)
	if err != nil {
		return order.PricingPolicy{}, err
	}
	threshold, err := parseMoney("free delivery threshold", config.FreeDeliveryThreshold)
	if err != nil {
		return order.PricingPolicy{}, err
	}
	codFee, err := parseMoney("cod fee", config.CODFee)
	if err != nil {
		return order.PricingPolicy{}, err
	}

	return order.NewPricingPolicy(taxRate, deliveryFee, threshold, codFee)
}

func parseMoney(name, raw string) (kernel.Money, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return kernel.Money{}, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return kernel.NewMoney(amount)
}

func buildSessionStore(config Config) (ports.SessionStore, error) {
	switch config.SessionStore {
	case "memory":
		return memstore.NewSessionStore(), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
		})
		return redisstore.NewSessionStore(client, config.RedisSessionTTL), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", config.SessionStore)
	}
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderTrackingUoWFactory func() commands.OrderTrackingUoW

func (f FuncOrderTrackingUoWFactory) Create() commands.OrderTrackingUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}
