package fx

import "go.uber.org/fx"

// AppModule bundles every module of the application.
var AppModule = fx.Options(
	ConfigModule,
	InfrastructureModule,
	DomainModule,
	MiddlewareModule,
	RoutesModule,
	ServerModule,
)
