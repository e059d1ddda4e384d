package config

type (
	InternalConfig struct {
		App          App
		JWT          JWT
		Availability Availability
	}
	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int
		RateLimitBlockTimeInMinute int
		EventsExchangeName         string
	}
	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
	// Availability configures the calendar engine. DefaultStatus is the
	// status reported for days no stored range covers; SerializeWrites
	// turns on the per-guide redis write lock.
	Availability struct {
		DefaultStatus        string
		SerializeWrites      bool
		WriteLockTTLInSecond int
	}
)
