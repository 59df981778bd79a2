package gazetteer

import "locality-api/internal/models"

// defaultStates lists every state and union territory with the short codes used across the marketplace.
var defaultStates = []models.State{
	{Name: "Andhra Pradesh", Code: "AP"},
	{Name: "Arunachal Pradesh", Code: "AR"},
	{Name: "Assam", Code: "AS"},
	{Name: "Bihar", Code: "BR"},
	{Name: "Chhattisgarh", Code: "CG"},
	{Name: "Goa", Code: "GA"},
	{Name: "Gujarat", Code: "GJ"},
	{Name: "Haryana", Code: "HR"},
	{Name: "Himachal Pradesh", Code: "HP"},
	{Name: "Jharkhand", Code: "JH"},
	{Name: "Karnataka", Code: "KA"},
	{Name: "Kerala", Code: "KL"},
	{Name: "Madhya Pradesh", Code: "MP"},
	{Name: "Maharashtra", Code: "MH"},
	{Name: "Manipur", Code: "MN"},
	{Name: "Meghalaya", Code: "ML"},
	{Name: "Mizoram", Code: "MZ"},
	{Name: "Nagaland", Code: "NL"},
	{Name: "Odisha", Code: "OD"},
	{Name: "Punjab", Code: "PB"},
	{Name: "Rajasthan", Code: "RJ"},
	{Name: "Sikkim", Code: "SK"},
	{Name: "Tamil Nadu", Code: "TN"},
	{Name: "Telangana", Code: "TS"},
	{Name: "Tripura", Code: "TR"},
	{Name: "Uttar Pradesh", Code: "UP"},
	{Name: "Uttarakhand", Code: "UK"},
	{Name: "West Bengal", Code: "WB"},
	{Name: "Andaman and Nicobar Islands", Code: "AN"},
	{Name: "Chandigarh", Code: "CH"},
	{Name: "Dadra and Nagar Haveli and Daman and Diu", Code: "DH"},
	{Name: "Delhi", Code: "DL"},
	{Name: "Jammu and Kashmir", Code: "JK"},
	{Name: "Ladakh", Code: "LA"},
	{Name: "Lakshadweep", Code: "LD"},
	{Name: "Puducherry", Code: "PY"},
}

// defaultCities is the built-in city list. Populations are census urban-agglomeration
// figures rounded to the nearest thousand.
var defaultCities = []models.City{
	// Maharashtra
	{Name: "Mumbai", State: "Maharashtra", Latitude: 19.0760, Longitude: 72.8777, IsMetro: true, Population: 18414000},
	{Name: "Pune", State: "Maharashtra", Latitude: 18.5204, Longitude: 73.8567, IsMetro: true, Population: 5057000},
	{Name: "Thane", State: "Maharashtra", Latitude: 19.2183, Longitude: 72.9781, Population: 1841000},
	{Name: "Navi Mumbai", State: "Maharashtra", Latitude: 19.0330, Longitude: 73.0297, Population: 1120000},
	{Name: "Kalyan", State: "Maharashtra", Latitude: 19.2403, Longitude: 73.1305, Population: 1247000},
	{Name: "Vasai-Virar", State: "Maharashtra", Latitude: 19.3919, Longitude: 72.8397, Population: 1222000},
	{Name: "Nashik", State: "Maharashtra", Latitude: 19.9975, Longitude: 73.7898, Population: 1562000},
	{Name: "Nagpur", State: "Maharashtra", Latitude: 21.1458, Longitude: 79.0882, Population: 2498000},
	{Name: "Aurangabad", State: "Maharashtra", Latitude: 19.8762, Longitude: 75.3433, Population: 1193000},
	{Name: "Solapur", State: "Maharashtra", Latitude: 17.6599, Longitude: 75.9064, Population: 951000},
	{Name: "Kolhapur", State: "Maharashtra", Latitude: 16.7050, Longitude: 74.2433, Population: 561000},

	// Delhi and the National Capital Region
	{Name: "Delhi", State: "Delhi", Latitude: 28.7041, Longitude: 77.1025, IsMetro: true, Population: 16315000},
	{Name: "New Delhi", State: "Delhi", Latitude: 28.6139, Longitude: 77.2090, IsMetro: true, Population: 250000},
	{Name: "Gurgaon", State: "Haryana", Latitude: 28.4595, Longitude: 77.0266, Population: 877000},
	{Name: "Faridabad", State: "Haryana", Latitude: 28.4089, Longitude: 77.3178, Population: 1414000},
	{Name: "Noida", State: "Uttar Pradesh", Latitude: 28.5355, Longitude: 77.3910, Population: 637000},
	{Name: "Ghaziabad", State: "Uttar Pradesh", Latitude: 28.6692, Longitude: 77.4538, Population: 2358000},

	// Karnataka
	{Name: "Bangalore", State: "Karnataka", Latitude: 12.9716, Longitude: 77.5946, IsMetro: true, Population: 8499000},
	{Name: "Mysore", State: "Karnataka", Latitude: 12.2958, Longitude: 76.6394, Population: 991000},
	{Name: "Mangalore", State: "Karnataka", Latitude: 12.9141, Longitude: 74.8560, Population: 624000},
	{Name: "Hubli", State: "Karnataka", Latitude: 15.3647, Longitude: 75.1240, Population: 944000},
	{Name: "Belgaum", State: "Karnataka", Latitude: 15.8497, Longitude: 74.4977, Population: 610000},

	// Tamil Nadu
	{Name: "Chennai", State: "Tamil Nadu", Latitude: 13.0827, Longitude: 80.2707, IsMetro: true, Population: 8696000},
	{Name: "Coimbatore", State: "Tamil Nadu", Latitude: 11.0168, Longitude: 76.9558, Population: 2151000},
	{Name: "Madurai", State: "Tamil Nadu", Latitude: 9.9252, Longitude: 78.1198, Population: 1462000},
	{Name: "Tiruchirappalli", State: "Tamil Nadu", Latitude: 10.7905, Longitude: 78.7047, Population: 1022000},
	{Name: "Salem", State: "Tamil Nadu", Latitude: 11.6643, Longitude: 78.1460, Population: 919000},

	// Telangana and Andhra Pradesh
	{Name: "Hyderabad", State: "Telangana", Latitude: 17.3850, Longitude: 78.4867, IsMetro: true, Population: 7677000},
	{Name: "Warangal", State: "Telangana", Latitude: 17.9689, Longitude: 79.5941, Population: 759000},
	{Name: "Visakhapatnam", State: "Andhra Pradesh", Latitude: 17.6868, Longitude: 83.2185, Population: 1730000},
	{Name: "Vijayawada", State: "Andhra Pradesh", Latitude: 16.5062, Longitude: 80.6480, Population: 1491000},
	{Name: "Guntur", State: "Andhra Pradesh", Latitude: 16.3067, Longitude: 80.4365, Population: 743000},
	{Name: "Tirupati", State: "Andhra Pradesh", Latitude: 13.6288, Longitude: 79.4192, Population: 460000},

	// Kerala
	{Name: "Kochi", State: "Kerala", Latitude: 9.9312, Longitude: 76.2673, Population: 2119000},
	{Name: "Thiruvananthapuram", State: "Kerala", Latitude: 8.5241, Longitude: 76.9366, Population: 1687000},
	{Name: "Kozhikode", State: "Kerala", Latitude: 11.2588, Longitude: 75.7804, Population: 2031000},

	// West Bengal and the east
	{Name: "Kolkata", State: "West Bengal", Latitude: 22.5726, Longitude: 88.3639, IsMetro: true, Population: 14113000},
	{Name: "Howrah", State: "West Bengal", Latitude: 22.5958, Longitude: 88.2636, Population: 1077000},
	{Name: "Durgapur", State: "West Bengal", Latitude: 23.5204, Longitude: 87.3119, Population: 581000},
	{Name: "Siliguri", State: "West Bengal", Latitude: 26.7271, Longitude: 88.3953, Population: 705000},
	{Name: "Bankura", State: "West Bengal", Latitude: 23.2324, Longitude: 87.0710, Population: 138000},
	{Name: "Bhubaneswar", State: "Odisha", Latitude: 20.2961, Longitude: 85.8245, Population: 886000},
	{Name: "Cuttack", State: "Odisha", Latitude: 20.4625, Longitude: 85.8830, Population: 663000},
	{Name: "Patna", State: "Bihar", Latitude: 25.5941, Longitude: 85.1376, Population: 2049000},
	{Name: "Gaya", State: "Bihar", Latitude: 24.7914, Longitude: 85.0002, Population: 470000},
	{Name: "Ranchi", State: "Jharkhand", Latitude: 23.3441, Longitude: 85.3096, Population: 1127000},
	{Name: "Jamshedpur", State: "Jharkhand", Latitude: 22.8046, Longitude: 86.2029, Population: 1339000},
	{Name: "Dhanbad", State: "Jharkhand", Latitude: 23.7957, Longitude: 86.4304, Population: 1196000},

	// Northeast
	{Name: "Guwahati", State: "Assam", Latitude: 26.1445, Longitude: 91.7362, Population: 963000},
	{Name: "Dibrugarh", State: "Assam", Latitude: 27.4728, Longitude: 94.9120, Population: 154000},
	{Name: "Shillong", State: "Meghalaya", Latitude: 25.5788, Longitude: 91.8933, Population: 354000},
	{Name: "Imphal", State: "Manipur", Latitude: 24.8170, Longitude: 93.9368, Population: 418000},
	{Name: "Agartala", State: "Tripura", Latitude: 23.8315, Longitude: 91.2868, Population: 522000},
	{Name: "Aizawl", State: "Mizoram", Latitude: 23.7271, Longitude: 92.7176, Population: 293000},
	{Name: "Kohima", State: "Nagaland", Latitude: 25.6751, Longitude: 94.1086, Population: 100000},
	{Name: "Itanagar", State: "Arunachal Pradesh", Latitude: 27.0844, Longitude: 93.6053, Population: 60000},
	{Name: "Gangtok", State: "Sikkim", Latitude: 27.3389, Longitude: 88.6065, Population: 100000},

	// Gujarat, Rajasthan, Goa
	{Name: "Ahmedabad", State: "Gujarat", Latitude: 23.0225, Longitude: 72.5714, IsMetro: true, Population: 6352000},
	{Name: "Surat", State: "Gujarat", Latitude: 21.1702, Longitude: 72.8311, Population: 4585000},
	{Name: "Vadodara", State: "Gujarat", Latitude: 22.3072, Longitude: 73.1812, Population: 1817000},
	{Name: "Rajkot", State: "Gujarat", Latitude: 22.3039, Longitude: 70.8022, Population: 1390000},
	{Name: "Jaipur", State: "Rajasthan", Latitude: 26.9124, Longitude: 75.7873, Population: 3046000},
	{Name: "Jodhpur", State: "Rajasthan", Latitude: 26.2389, Longitude: 73.0243, Population: 1138000},
	{Name: "Udaipur", State: "Rajasthan", Latitude: 24.5854, Longitude: 73.7125, Population: 474000},
	{Name: "Kota", State: "Rajasthan", Latitude: 25.2138, Longitude: 75.8648, Population: 1001000},
	{Name: "Panaji", State: "Goa", Latitude: 15.4909, Longitude: 73.8278, Population: 115000},
	{Name: "Daman", State: "Dadra and Nagar Haveli and Daman and Diu", Latitude: 20.3974, Longitude: 72.8328, Population: 191000},

	// Central India
	{Name: "Indore", State: "Madhya Pradesh", Latitude: 22.7196, Longitude: 75.8577, Population: 2170000},
	{Name: "Bhopal", State: "Madhya Pradesh", Latitude: 23.2599, Longitude: 77.4126, Population: 1886000},
	{Name: "Jabalpur", State: "Madhya Pradesh", Latitude: 23.1815, Longitude: 79.9864, Population: 1268000},
	{Name: "Gwalior", State: "Madhya Pradesh", Latitude: 26.2183, Longitude: 78.1828, Population: 1102000},
	{Name: "Raipur", State: "Chhattisgarh", Latitude: 21.2514, Longitude: 81.6296, Population: 1123000},
	{Name: "Bhilai", State: "Chhattisgarh", Latitude: 21.1938, Longitude: 81.3509, Population: 1064000},

	// North
	{Name: "Lucknow", State: "Uttar Pradesh", Latitude: 26.8467, Longitude: 80.9462, Population: 2902000},
	{Name: "Kanpur", State: "Uttar Pradesh", Latitude: 26.4499, Longitude: 80.3319, Population: 2921000},
	{Name: "Agra", State: "Uttar Pradesh", Latitude: 27.1767, Longitude: 78.0081, Population: 1760000},
	{Name: "Varanasi", State: "Uttar Pradesh", Latitude: 25.3176, Longitude: 82.9739, Population: 1435000},
	{Name: "Prayagraj", State: "Uttar Pradesh", Latitude: 25.4358, Longitude: 81.8463, Population: 1217000},
	{Name: "Chandigarh", State: "Chandigarh", Latitude: 30.7333, Longitude: 76.7794, Population: 1026000},
	{Name: "Ludhiana", State: "Punjab", Latitude: 30.9010, Longitude: 75.8573, Population: 1618000},
	{Name: "Amritsar", State: "Punjab", Latitude: 31.6340, Longitude: 74.8723, Population: 1183000},
	{Name: "Dehradun", State: "Uttarakhand", Latitude: 30.3165, Longitude: 78.0322, Population: 714000},
	{Name: "Shimla", State: "Himachal Pradesh", Latitude: 31.1048, Longitude: 77.1734, Population: 170000},
	{Name: "Srinagar", State: "Jammu and Kashmir", Latitude: 34.0837, Longitude: 74.7973, Population: 1273000},
	{Name: "Jammu", State: "Jammu and Kashmir", Latitude: 32.7266, Longitude: 74.8570, Population: 657000},
	{Name: "Leh", State: "Ladakh", Latitude: 34.1526, Longitude: 77.5771, Population: 31000},

	// Islands and Puducherry
	{Name: "Port Blair", State: "Andaman and Nicobar Islands", Latitude: 11.6234, Longitude: 92.7265, Population: 141000},
	{Name: "Kavaratti", State: "Lakshadweep", Latitude: 10.5593, Longitude: 72.6358, Population: 11000},
	{Name: "Puducherry", State: "Puducherry", Latitude: 11.9416, Longitude: 79.8083, Population: 657000},
}
