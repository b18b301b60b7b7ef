package country

import "github.com/okian/atlas/internal/domain/model"

// dictionary maps free-text country names to ISO-3166 alpha-3 codes.
// It carries both the spellings used by the happiness score table and
// the label variants found in common world polygon collections. Lookup
// is exact after trimming; a second attempt strips periods and unifies
// apostrophes (see normalize). Names absent under both forms are
// recorded as misses and excluded, never defaulted.
var dictionary = map[string]model.Code{ //nolint:gochecknoglobals // static reference table
	"Afghanistan":            "AFG",
	"Albania":                "ALB",
	"Algeria":                "DZA",
	"Angola":                 "AGO",
	"Argentina":              "ARG",
	"Armenia":                "ARM",
	"Australia":              "AUS",
	"Austria":                "AUT",
	"Azerbaijan":             "AZE",
	"Bahrain":                "BHR",
	"Bangladesh":             "BGD",
	"Belarus":                "BLR",
	"Belgium":                "BEL",
	"Belize":                 "BLZ",
	"Benin":                  "BEN",
	"Bhutan":                 "BTN",
	"Bolivia":                "BOL",
	"Bosnia and Herzegovina": "BIH",
	"Bosnia and Herz.":       "BIH",
	"Botswana":               "BWA",
	"Brazil":                 "BRA",
	"Brunei":                 "BRN",
	"Brunei Darussalam":      "BRN",
	"Bulgaria":               "BGR",
	"Burkina Faso":           "BFA",
	"Burundi":                "BDI",
	"Cambodia":               "KHM",
	"Cameroon":               "CMR",
	"Canada":                 "CAN",
	"Central African Republic": "CAF",
	"Central African Rep.":     "CAF",
	"Chad":                     "TCD",
	"Chile":                    "CHL",
	"China":                    "CHN",
	"Colombia":                 "COL",
	"Comoros":                  "COM",
	"Congo":                    "COG",
	"Congo (Brazzaville)":      "COG",
	"Republic of the Congo":    "COG",
	"Congo (Kinshasa)":         "COD",
	"Democratic Republic of the Congo": "COD",
	"Dem. Rep. Congo":                  "COD",
	"DR Congo":                         "COD",
	"Costa Rica":                       "CRI",
	"Cote d'Ivoire":                    "CIV",
	"Côte d'Ivoire":                    "CIV",
	"Ivory Coast":                      "CIV",
	"Croatia":                          "HRV",
	"Cuba":                             "CUB",
	"Cyprus":                           "CYP",
	"North Cyprus":                     "CYP",
	"Czechia":                          "CZE",
	"Czech Republic":                   "CZE",
	"Denmark":                          "DNK",
	"Djibouti":                         "DJI",
	"Dominican Republic":               "DOM",
	"Dominican Rep.":                   "DOM",
	"Ecuador":                          "ECU",
	"Egypt":                            "EGY",
	"El Salvador":                      "SLV",
	"Equatorial Guinea":                "GNQ",
	"Eq. Guinea":                       "GNQ",
	"Eritrea":                          "ERI",
	"Estonia":                          "EST",
	"Eswatini":                         "SWZ",
	"eSwatini":                         "SWZ",
	"Swaziland":                        "SWZ",
	"Ethiopia":                         "ETH",
	"Fiji":                             "FJI",
	"Finland":                          "FIN",
	"France":                           "FRA",
	"Gabon":                            "GAB",
	"Gambia":                           "GMB",
	"The Gambia":                       "GMB",
	"Georgia":                          "GEO",
	"Germany":                          "DEU",
	"Ghana":                            "GHA",
	"Greece":                           "GRC",
	"Greenland":                        "GRL",
	"Guatemala":                        "GTM",
	"Guinea":                           "GIN",
	"Guinea-Bissau":                    "GNB",
	"Guyana":                           "GUY",
	"Haiti":                            "HTI",
	"Honduras":                         "HND",
	"Hong Kong":                        "HKG",
	"Hong Kong S.A.R. of China":        "HKG",
	"Hungary":                          "HUN",
	"Iceland":                          "ISL",
	"India":                            "IND",
	"Indonesia":                        "IDN",
	"Iran":                             "IRN",
	"Iraq":                             "IRQ",
	"Ireland":                          "IRL",
	"Israel":                           "ISR",
	"Italy":                            "ITA",
	"Jamaica":                          "JAM",
	"Japan":                            "JPN",
	"Jordan":                           "JOR",
	"Kazakhstan":                       "KAZ",
	"Kenya":                            "KEN",
	"Kosovo":                           "XKX",
	"Kuwait":                           "KWT",
	"Kyrgyzstan":                       "KGZ",
	"Laos":                             "LAO",
	"Lao PDR":                          "LAO",
	"Latvia":                           "LVA",
	"Lebanon":                          "LBN",
	"Lesotho":                          "LSO",
	"Liberia":                          "LBR",
	"Libya":                            "LBY",
	"Lithuania":                        "LTU",
	"Luxembourg":                       "LUX",
	"Madagascar":                       "MDG",
	"Malawi":                           "MWI",
	"Malaysia":                         "MYS",
	"Maldives":                         "MDV",
	"Mali":                             "MLI",
	"Malta":                            "MLT",
	"Mauritania":                       "MRT",
	"Mauritius":                        "MUS",
	"Mexico":                           "MEX",
	"Moldova":                          "MDA",
	"Mongolia":                         "MNG",
	"Montenegro":                       "MNE",
	"Morocco":                          "MAR",
	"Mozambique":                       "MOZ",
	"Myanmar":                          "MMR",
	"Burma":                            "MMR",
	"Namibia":                          "NAM",
	"Nepal":                            "NPL",
	"Netherlands":                      "NLD",
	"New Zealand":                      "NZL",
	"Nicaragua":                        "NIC",
	"Niger":                            "NER",
	"Nigeria":                          "NGA",
	"North Korea":                      "PRK",
	"North Macedonia":                  "MKD",
	"Macedonia":                        "MKD",
	"Norway":                           "NOR",
	"Oman":                             "OMN",
	"Pakistan":                         "PAK",
	"Palestine":                        "PSE",
	"Palestinian Territories":          "PSE",
	"State of Palestine":               "PSE",
	"Panama":                           "PAN",
	"Papua New Guinea":                 "PNG",
	"Paraguay":                         "PRY",
	"Peru":                             "PER",
	"Philippines":                      "PHL",
	"Poland":                           "POL",
	"Portugal":                         "PRT",
	"Puerto Rico":                      "PRI",
	"Qatar":                            "QAT",
	"Romania":                          "ROU",
	"Russia":                           "RUS",
	"Russian Federation":               "RUS",
	"Rwanda":                           "RWA",
	"Saudi Arabia":                     "SAU",
	"Senegal":                          "SEN",
	"Serbia":                           "SRB",
	"Sierra Leone":                     "SLE",
	"Singapore":                        "SGP",
	"Slovakia":                         "SVK",
	"Slovenia":                         "SVN",
	"Solomon Islands":                  "SLB",
	"Solomon Is.":                      "SLB",
	"Somalia":                          "SOM",
	"Somaliland region":                "SOM",
	"South Africa":                     "ZAF",
	"South Korea":                      "KOR",
	"Republic of Korea":                "KOR",
	"Korea":                            "KOR",
	"South Sudan":                      "SSD",
	"S. Sudan":                         "SSD",
	"Spain":                            "ESP",
	"Sri Lanka":                        "LKA",
	"Sudan":                            "SDN",
	"Suriname":                         "SUR",
	"Sweden":                           "SWE",
	"Switzerland":                      "CHE",
	"Syria":                            "SYR",
	"Taiwan":                           "TWN",
	"Taiwan Province of China":         "TWN",
	"Tajikistan":                       "TJK",
	"Tanzania":                         "TZA",
	"United Republic of Tanzania":      "TZA",
	"Thailand":                         "THA",
	"Timor-Leste":                      "TLS",
	"East Timor":                       "TLS",
	"Togo":                             "TGO",
	"Trinidad and Tobago":              "TTO",
	"Trinidad & Tobago":                "TTO",
	"Tunisia":                          "TUN",
	"Turkey":                           "TUR",
	"Turkiye":                          "TUR",
	"Turkmenistan":                     "TKM",
	"Uganda":                           "UGA",
	"Ukraine":                          "UKR",
	"United Arab Emirates":             "ARE",
	"United Kingdom":                   "GBR",
	"United States":                    "USA",
	"United States of America":         "USA",
	"Uruguay":                          "URY",
	"Uzbekistan":                       "UZB",
	"Vanuatu":                          "VUT",
	"Venezuela":                        "VEN",
	"Vietnam":                          "VNM",
	"Viet Nam":                         "VNM",
	"Western Sahara":                   "ESH",
	"W. Sahara":                        "ESH",
	"Yemen":                            "YEM",
	"Zambia":                           "ZMB",
	"Zimbabwe":                         "ZWE",
}
