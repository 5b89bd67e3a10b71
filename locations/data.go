package locations

// Representative slice of the national administrative dataset. Wards with
// no curated areas fall back to the generic area list at lookup time.
var counties = []County{
	{
		Name: "Nairobi",
		Code: "047",
		SubCounties: []SubCounty{
			{
				Name: "Westlands",
				Wards: []Ward{
					{Name: "Kitisuru", Areas: []string{
						"Kitisuru Estate", "Runda Estate", "Muthaiga North", "Spring Valley",
						"Ridgeways Estate", "Gigiri Estate", "Village Market Area", "Rosslyn Estate",
					}},
					{Name: "Parklands/Highridge", Areas: []string{
						"Parklands", "Highridge", "Ngara", "Pangani Estate", "Museum Hill",
					}},
					{Name: "Karura", Areas: []string{
						"Karura Forest", "Two Rivers", "Kiambu Road", "Limuru Road", "Gigiri Shopping Centre",
					}},
					{Name: "Kangemi", Areas: []string{
						"Kangemi Market", "Kangemi Estate", "ABC Place", "Waiyaki Way", "Mountain View Estate", "Uthiru",
					}},
					{Name: "Mountain View", Areas: []string{
						"Mountain View Estate", "Lavington", "Dennis Pritt Road", "James Gichuru Road",
					}},
				},
			},
			{
				Name: "Dagoretti North",
				Wards: []Ward{
					{Name: "Kilimani", Areas: []string{
						"Kilimani Estate", "Yaya Centre Area", "Hurlingham", "Argwings Kodhek Road",
					}},
					{Name: "Kawangware", Areas: []string{"Kawangware Market", "Congo", "Stage 56"}},
					{Name: "Gatina"},
					{Name: "Kileleshwa", Areas: []string{"Kileleshwa Estate", "Riverside Drive", "Othaya Road"}},
					{Name: "Kabiro"},
				},
			},
			{
				Name: "Langata",
				Wards: []Ward{
					{Name: "Karen", Areas: []string{
						"Karen Estate", "Karen Shopping Centre", "Hardy", "Bogani Road",
					}},
					{Name: "Nairobi West", Areas: []string{"Nairobi West Shopping Centre", "Madaraka Estate"}},
					{Name: "South C", Areas: []string{"South C Shopping Centre", "Mugoya Estate", "Akiba Estate"}},
					{Name: "Nyayo Highrise"},
				},
			},
			{
				Name: "Embakasi East",
				Wards: []Ward{
					{Name: "Utawala", Areas: []string{"Utawala Estate", "Mihango Phase 2", "Benedicta"}},
					{Name: "Mihango"},
					{Name: "Upper Savannah"},
					{Name: "Lower Savannah"},
					{Name: "Embakasi", Areas: []string{"Embakasi Village", "Pipeline Estate", "Tassia"}},
				},
			},
		},
	},
	{
		Name: "Mombasa",
		Code: "001",
		SubCounties: []SubCounty{
			{
				Name: "Changamwe",
				Wards: []Ward{
					{Name: "Port Reitz"},
					{Name: "Kipevu"},
					{Name: "Airport", Areas: []string{"Moi International Airport Area", "Magongo", "Mikindani"}},
					{Name: "Chaani"},
				},
			},
			{
				Name: "Nyali",
				Wards: []Ward{
					{Name: "Frere Town"},
					{Name: "Mkomani", Areas: []string{"Nyali Beach", "Nyali Centre", "Links Road"}},
					{Name: "Kongowea", Areas: []string{"Kongowea Market", "Bombolulu"}},
					{Name: "Kadzandani"},
				},
			},
			{
				Name: "Mvita",
				Wards: []Ward{
					{Name: "Mji wa Kale/Makadara", Areas: []string{"Old Town", "Fort Jesus Area"}},
					{Name: "Tudor/Tononoka"},
					{Name: "Majengo"},
				},
			},
		},
	},
	{
		Name: "Kisumu",
		Code: "042",
		SubCounties: []SubCounty{
			{
				Name: "Kisumu East",
				Wards: []Ward{
					{Name: "Railway", Areas: []string{"Railway Estate", "Kibuye Market Area"}},
					{Name: "Migosi"},
					{Name: "Market Milimani", Areas: []string{"Milimani Estate", "Kisumu CBD"}},
					{Name: "Kondele"},
				},
			},
			{
				Name: "Kisumu Central",
				Wards: []Ward{
					{Name: "Shaurimoyo Kaloleni"},
					{Name: "Nyalenda A"},
					{Name: "Nyalenda B"},
				},
			},
		},
	},
	{
		Name: "Nakuru",
		Code: "032",
		SubCounties: []SubCounty{
			{
				Name: "Nakuru East",
				Wards: []Ward{
					{Name: "Biashara", Areas: []string{"Nakuru CBD", "Railways Area"}},
					{Name: "Kivumbini"},
					{Name: "Flamingo"},
					{Name: "Menengai"},
				},
			},
			{
				Name: "Nakuru West",
				Wards: []Ward{
					{Name: "London", Areas: []string{"London Estate", "Kaptembwo"}},
					{Name: "Kaptembwo"},
					{Name: "Rhonda"},
					{Name: "Shaabab"},
				},
			},
			{
				Name: "Naivasha",
				Wards: []Ward{
					{Name: "Lake View", Areas: []string{"Lake Naivasha Area", "Kihoto"}},
					{Name: "Hells Gate"},
					{Name: "Viwandani"},
				},
			},
		},
	},
	{
		Name: "Kiambu",
		Code: "022",
		SubCounties: []SubCounty{
			{
				Name: "Thika Town",
				Wards: []Ward{
					{Name: "Township", Areas: []string{"Thika CBD", "Section 9", "Makongeni"}},
					{Name: "Kamenu"},
					{Name: "Hospital"},
				},
			},
			{
				Name: "Ruiru",
				Wards: []Ward{
					{Name: "Biashara", Areas: []string{"Ruiru Town", "Kimbo"}},
					{Name: "Gatongora"},
					{Name: "Kahawa Sukari", Areas: []string{"Kahawa Sukari Estate", "Kahawa Wendani"}},
				},
			},
			{
				Name: "Kikuyu",
				Wards: []Ward{
					{Name: "Kikuyu", Areas: []string{"Kikuyu Town", "Thogoto"}},
					{Name: "Kinoo"},
					{Name: "Karai"},
				},
			},
		},
	},
	{
		Name: "Machakos",
		Code: "016",
		SubCounties: []SubCounty{
			{
				Name: "Machakos Town",
				Wards: []Ward{
					{Name: "Machakos Central", Areas: []string{"Machakos CBD", "Miwani Estate"}},
					{Name: "Mumbuni North"},
					{Name: "Muvuti/Kiima-Kimwe"},
				},
			},
			{
				Name: "Athi River",
				Wards: []Ward{
					{Name: "Athi River", Areas: []string{"Athi River Town", "EPZ Area", "Mlolongo"}},
					{Name: "Kinanie"},
					{Name: "Muthwani"},
				},
			},
		},
	},
	{
		Name: "Uasin Gishu",
		Code: "027",
		SubCounties: []SubCounty{
			{
				Name: "Kapseret",
				Wards: []Ward{
					{Name: "Langas", Areas: []string{"Langas Estate", "Pipeline Area"}},
					{Name: "Kipkenyo"},
					{Name: "Simat/Kapseret"},
				},
			},
			{
				Name: "Ainabkoi",
				Wards: []Ward{
					{Name: "Kapsoya", Areas: []string{"Kapsoya Estate", "Eldoret East"}},
					{Name: "Kaptagat"},
					{Name: "Ainabkoi/Olare"},
				},
			},
		},
	},
}
