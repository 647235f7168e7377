package geocoding

// zipCenters maps Chicagoland ZIP codes to an approximate center
// (ZIP centroid or well-known point). Used for instant ZIP search with
// no provider round-trip, and as the only resolution path when no
// provider token is configured.
var zipCenters = map[string]LatLng{
	"60076": {Lat: 42.032, Lng: -87.747}, // Skokie
	"60153": {Lat: 41.879, Lng: -87.844}, // Maywood
	"60160": {Lat: 41.9, Lng: -87.833},   // Melrose Park
	"60201": {Lat: 42.045, Lng: -87.687}, // Evanston
	"60601": {Lat: 41.885, Lng: -87.622},
	"60602": {Lat: 41.883, Lng: -87.629},
	"60603": {Lat: 41.88, Lng: -87.629},
	"60604": {Lat: 41.878, Lng: -87.629},
	"60605": {Lat: 41.869, Lng: -87.624},
	"60606": {Lat: 41.881, Lng: -87.637},
	"60607": {Lat: 41.875, Lng: -87.651},
	"60608": {Lat: 41.849, Lng: -87.67},
	"60609": {Lat: 41.812, Lng: -87.653},
	"60610": {Lat: 41.904, Lng: -87.637},
	"60611": {Lat: 41.894, Lng: -87.621},
	"60612": {Lat: 41.88, Lng: -87.687},
	"60613": {Lat: 41.953, Lng: -87.655},
	"60614": {Lat: 41.924, Lng: -87.653},
	"60615": {Lat: 41.802, Lng: -87.602},
	"60616": {Lat: 41.844, Lng: -87.629},
	"60617": {Lat: 41.713, Lng: -87.565},
	"60618": {Lat: 41.947, Lng: -87.703},
	"60619": {Lat: 41.744, Lng: -87.606},
	"60620": {Lat: 41.741, Lng: -87.652},
	"60621": {Lat: 41.776, Lng: -87.641},
	"60622": {Lat: 41.902, Lng: -87.679},
	"60623": {Lat: 41.846, Lng: -87.717},
	"60624": {Lat: 41.881, Lng: -87.703},
	"60625": {Lat: 41.971, Lng: -87.702},
	"60626": {Lat: 42.009, Lng: -87.669},
	"60628": {Lat: 41.692, Lng: -87.621},
	"60629": {Lat: 41.775, Lng: -87.711},
	"60630": {Lat: 41.972, Lng: -87.759},
	"60631": {Lat: 41.995, Lng: -87.707},
	"60632": {Lat: 41.81, Lng: -87.708},
	"60633": {Lat: 41.653, Lng: -87.549},
	"60634": {Lat: 41.946, Lng: -87.796},
	"60636": {Lat: 41.776, Lng: -87.669},
	"60637": {Lat: 41.781, Lng: -87.604},
	"60638": {Lat: 41.782, Lng: -87.771},
	"60639": {Lat: 41.92, Lng: -87.755},
	"60640": {Lat: 41.972, Lng: -87.663},
	"60641": {Lat: 41.946, Lng: -87.747},
	"60642": {Lat: 41.899, Lng: -87.657},
	"60643": {Lat: 41.699, Lng: -87.662},
	"60644": {Lat: 41.882, Lng: -87.757},
	"60645": {Lat: 42.008, Lng: -87.694},
	"60646": {Lat: 41.994, Lng: -87.761},
	"60647": {Lat: 41.921, Lng: -87.704},
	"60649": {Lat: 41.762, Lng: -87.571},
	"60651": {Lat: 41.902, Lng: -87.741},
	"60652": {Lat: 41.748, Lng: -87.714},
	"60653": {Lat: 41.819, Lng: -87.611},
	"60654": {Lat: 41.889, Lng: -87.637},
	"60655": {Lat: 41.692, Lng: -87.701},
	"60656": {Lat: 41.974, Lng: -87.817},
	"60657": {Lat: 41.94, Lng: -87.654},
	"60659": {Lat: 41.996, Lng: -87.707},
	"60660": {Lat: 41.985, Lng: -87.663},
	"60661": {Lat: 41.883, Lng: -87.644},
}

// ZipCenter returns the approximate center for a known Chicagoland ZIP.
func ZipCenter(zip string) (LatLng, bool) {
	center, ok := zipCenters[zip]
	return center, ok
}
