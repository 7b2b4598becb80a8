package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	MongoDB struct {
		Port                    string
		Host                    string
		DbName                  string
		Username                string
		Password                string
		ConnectTimeoutInSeconds int
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
)

type InternalConfig struct {
	App     App
	Model   Model
	Session Session
	Events  Events
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
	StoreTimeoutInSeconds      int
	ModelTimeoutInSeconds      int
}

type Model struct {
	BaseUrl     string
	APIKey      string
	ChatModel   string
	VisionModel string
}

type Session struct {
	// Backend selects the session store implementation: "memory" or "redis".
	Backend      string
	Capacity     int
	TTLInMinutes int
}

type Events struct {
	Queue   string
	Enabled bool
}
