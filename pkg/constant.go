package pkg

const (
	INF_WEIGHT float64 = 1e15

	// travel cost model: cost = distance_km * traffic_factor + toll_php / TOLL_COST_DIVISOR
	TOLL_COST_DIVISOR = 10.0
	DEFAULT_TRAFFIC   = 1.0

	AVG_SPEED_KMH        = 60.0
	FUEL_COST_PHP_PER_KM = 2.5
)

const (
	STARTING_POINT_LABEL = "Starting Point"
	LOCAL_ROAD_LABEL     = "Local Road"
)

const (
	DEBUG = false
)
