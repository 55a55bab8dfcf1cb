package core

// Atmospheric lookup tables for a dry, high-altitude single-dish site.
// Rows run over observing frequency from 30 to 1000 GHz in 10 GHz steps;
// column 0 holds the frequency in GHz and columns 1..5 hold the value for
// the weather percentiles in atmWeatherGrid. zenithOpacityTable carries
// zenith optical depth (dimensionless); skyTemperatureTable carries the
// atmospheric brightness temperature in kelvin.

var atmWeatherGrid = []float64{0, 25, 50, 75, 100}

var zenithOpacityTable = [][]float64{
	{30, 0.0211, 0.0262, 0.0322, 0.0474, 0.0746},
	{40, 0.0285, 0.0338, 0.04, 0.0559, 0.0843},
	{50, 0.0579, 0.0635, 0.07, 0.0867, 0.1164},
	{60, 0.1759, 0.1817, 0.1886, 0.2061, 0.2372},
	{70, 0.0586, 0.0648, 0.072, 0.0904, 0.1232},
	{80, 0.03, 0.0365, 0.044, 0.0635, 0.098},
	{90, 0.0235, 0.0304, 0.0384, 0.059, 0.0956},
	{100, 0.0218, 0.0292, 0.0377, 0.0596, 0.0986},
	{110, 0.0238, 0.0316, 0.0408, 0.0642, 0.106},
	{120, 0.0565, 0.0649, 0.0748, 0.1002, 0.1453},
	{130, 0.0231, 0.0324, 0.0433, 0.0712, 0.1208},
	{140, 0.0228, 0.0333, 0.0455, 0.077, 0.133},
	{150, 0.0246, 0.0372, 0.0518, 0.0894, 0.1562},
	{160, 0.0296, 0.0466, 0.0664, 0.1173, 0.2079},
	{170, 0.0478, 0.0805, 0.1187, 0.2168, 0.3913},
	{180, 0.2412, 0.4399, 0.6716, 1.2674, 2.3268},
	{190, 0.1115, 0.199, 0.3011, 0.5636, 1.0304},
	{200, 0.0403, 0.0668, 0.0977, 0.1772, 0.3185},
	{210, 0.0306, 0.0488, 0.0701, 0.1247, 0.2218},
	{220, 0.0282, 0.0444, 0.0633, 0.1118, 0.1981},
	{230, 0.0277, 0.0436, 0.062, 0.1095, 0.1939},
	{240, 0.0281, 0.0442, 0.0631, 0.1115, 0.1976},
	{250, 0.0289, 0.0457, 0.0654, 0.1159, 0.2057},
	{260, 0.03, 0.0479, 0.0687, 0.1221, 0.2172},
	{270, 0.0315, 0.0506, 0.0729, 0.1301, 0.2319},
	{280, 0.0334, 0.0541, 0.0782, 0.1404, 0.2508},
	{290, 0.0359, 0.0588, 0.0856, 0.1543, 0.2764},
	{300, 0.04, 0.0664, 0.0972, 0.1763, 0.3171},
	{310, 0.0496, 0.0842, 0.1246, 0.2284, 0.413},
	{320, 0.1179, 0.211, 0.3197, 0.5991, 1.0958},
	{330, 0.1288, 0.2314, 0.351, 0.6587, 1.2055},
	{340, 0.0625, 0.1081, 0.1614, 0.2984, 0.5419},
	{350, 0.0643, 0.1116, 0.1667, 0.3085, 0.5604},
	{360, 0.0836, 0.1473, 0.2217, 0.4129, 0.7528},
	{370, 0.1731, 0.3135, 0.4774, 0.8987, 1.6477},
	{380, 1.1896, 2.2013, 3.3816, 6.4167, 11.8125},
	{390, 0.1911, 0.347, 0.5288, 0.9965, 1.8278},
	{400, 0.1035, 0.1842, 0.2784, 0.5206, 0.9513},
	{410, 0.0928, 0.1643, 0.2479, 0.4626, 0.8443},
	{420, 0.0975, 0.1732, 0.2615, 0.4885, 0.892},
	{430, 0.1143, 0.2043, 0.3092, 0.5792, 1.0592},
	{440, 0.1839, 0.3335, 0.5081, 0.9571, 1.7552},
	{450, 0.5442, 1.0027, 1.5375, 2.913, 5.3582},
	{460, 0.1816, 0.3293, 0.5017, 0.9448, 1.7326},
	{470, 0.1861, 0.3376, 0.5143, 0.9688, 1.7768},
	{480, 0.2211, 0.4027, 0.6145, 1.1592, 2.1275},
	{490, 0.2788, 0.5098, 0.7793, 1.4723, 2.7043},
	{500, 0.3704, 0.6799, 1.041, 1.9695, 3.6202},
	{510, 0.524, 0.9651, 1.4797, 2.803, 5.1556},
	{520, 0.807, 1.4907, 2.2884, 4.3396, 7.986},
	{530, 1.4078, 2.6065, 4.005, 7.6011, 13.9942},
	{540, 2.9686, 5.5052, 8.4644, 16.074, 29.6021},
	{550, 7.7006, 14.293, 21.9842, 41.7615, 76.9211},
	{560, 10.4218, 19.3468, 29.7592, 56.5341, 104.134},
	{570, 4.2365, 7.8597, 12.0868, 22.9565, 42.2804},
	{580, 1.8392, 3.4076, 5.2374, 9.9426, 18.3075},
	{590, 0.9975, 1.8444, 2.8325, 5.3732, 9.89},
	{600, 0.6342, 1.1697, 1.7944, 3.4008, 6.2567},
	{610, 0.4693, 0.8634, 1.3231, 2.5055, 4.6073},
	{620, 0.7595, 1.4024, 2.1525, 4.0811, 7.5099},
	{630, 0.306, 0.5602, 0.8567, 1.6191, 2.9746},
	{640, 0.2326, 0.4238, 0.6469, 1.2205, 2.2404},
	{650, 0.2007, 0.3645, 0.5556, 1.0471, 1.9209},
	{660, 0.1836, 0.3328, 0.5069, 0.9545, 1.7502},
	{670, 0.1767, 0.3199, 0.4871, 0.9169, 1.6809},
	{680, 0.1792, 0.3245, 0.4941, 0.9302, 1.7055},
	{690, 0.1929, 0.35, 0.5332, 1.0045, 1.8423},
	{700, 0.2234, 0.4067, 0.6205, 1.1703, 2.1477},
	{710, 0.2849, 0.5208, 0.796, 1.5038, 2.7621},
	{720, 0.4152, 0.7628, 1.1684, 2.2112, 4.0652},
	{730, 0.7399, 1.3657, 2.0959, 3.9736, 7.3117},
	{740, 1.8169, 3.366, 5.1732, 9.8203, 18.082},
	{750, 5.409, 10.037, 15.4363, 29.3203, 54.0028},
	{760, 2.9226, 5.4193, 8.3322, 15.8224, 29.1384},
	{770, 1.0112, 1.8696, 2.8711, 5.4463, 10.0245},
	{780, 0.5012, 0.9225, 1.414, 2.6778, 4.9247},
	{790, 0.3136, 0.5741, 0.878, 1.6594, 3.0485},
	{800, 0.227, 0.4131, 0.6303, 1.1888, 2.1817},
	{810, 0.1811, 0.3279, 0.4992, 0.9397, 1.7228},
	{820, 0.1549, 0.2793, 0.4245, 0.7977, 1.4611},
	{830, 0.1398, 0.2512, 0.3811, 0.7153, 1.3093},
	{840, 0.1316, 0.236, 0.3577, 0.6708, 1.2273},
	{850, 0.1286, 0.2304, 0.3491, 0.6544, 1.1972},
	{860, 0.1303, 0.2335, 0.3539, 0.6635, 1.2138},
	{870, 0.1374, 0.2466, 0.3741, 0.7018, 1.2844},
	{880, 0.1527, 0.2751, 0.4179, 0.785, 1.4377},
	{890, 0.1857, 0.3364, 0.5122, 0.9642, 1.7678},
	{900, 0.2773, 0.5064, 0.7737, 1.461, 2.6829},
	{910, 0.7647, 1.4115, 2.1662, 4.1068, 7.5567},
	{920, 1.1483, 2.1239, 3.2621, 6.189, 11.3923},
	{930, 0.4156, 0.7633, 1.1688, 2.2118, 4.0658},
	{940, 0.383, 0.7026, 1.0755, 2.0344, 3.7391},
	{950, 0.4965, 0.9134, 1.3999, 2.6506, 4.8743},
	{960, 0.7918, 1.4618, 2.2434, 4.2534, 7.8267},
	{970, 1.5965, 2.9562, 4.5426, 8.6217, 15.8736},
	{980, 4.3312, 8.035, 12.3561, 23.4675, 43.221},
	{990, 7.2576, 13.4697, 20.7171, 39.3534, 72.4846},
	{1000, 2.7703, 5.1361, 7.8962, 14.9936, 27.6113},
}

var skyTemperatureTable = [][]float64{
	{30, 5.614, 6.949, 8.499, 12.44, 19.301},
	{40, 7.534, 8.918, 10.524, 14.607, 21.706},
	{50, 15.107, 16.513, 18.144, 22.29, 29.491},
	{60, 43.308, 44.62, 46.14, 50.002, 56.703},
	{70, 15.293, 16.844, 18.642, 23.205, 31.113},
	{80, 7.927, 9.611, 11.562, 16.512, 25.076},
	{90, 6.24, 8.034, 10.113, 15.381, 24.484},
	{100, 5.801, 7.714, 9.928, 15.535, 25.203},
	{110, 6.318, 8.362, 10.727, 16.708, 27.002},
	{120, 14.743, 16.882, 19.354, 25.6, 36.321},
	{130, 6.144, 8.572, 11.376, 18.447, 30.542},
	{140, 6.047, 8.788, 11.949, 19.902, 33.436},
	{150, 6.534, 9.795, 13.549, 22.952, 38.821},
	{160, 7.826, 12.216, 17.243, 29.723, 50.399},
	{170, 12.529, 20.769, 30.047, 52.34, 86.952},
	{180, 57.552, 95.552, 131.324, 192.904, 242.291},
	{190, 28.336, 48.459, 69.815, 115.689, 172.677},
	{200, 10.605, 17.349, 24.994, 43.601, 73.24},
	{210, 8.089, 12.79, 18.166, 31.477, 53.419},
	{220, 7.464, 11.654, 16.458, 28.403, 48.257},
	{230, 7.347, 11.447, 16.149, 27.848, 47.324},
	{240, 7.439, 11.62, 16.412, 28.329, 48.14},
	{250, 7.648, 12.004, 16.994, 29.385, 49.925},
	{260, 7.944, 12.547, 17.814, 30.867, 52.416},
	{270, 8.326, 13.245, 18.866, 32.759, 55.576},
	{280, 8.815, 14.137, 20.208, 35.162, 59.558},
	{290, 9.478, 15.343, 22.018, 38.384, 64.844},
	{300, 10.529, 17.248, 24.865, 43.409, 72.961},
	{310, 12.99, 21.681, 31.448, 54.825, 90.838},
	{320, 29.856, 51.08, 73.467, 121.011, 178.752},
	{330, 32.46, 55.464, 79.485, 129.538, 188.077},
	{340, 16.264, 27.521, 40.021, 69.267, 112.326},
	{350, 16.732, 28.351, 41.23, 71.266, 115.199},
	{360, 21.528, 36.777, 53.382, 90.818, 142.019},
	{370, 42.671, 72.26, 101.917, 159.191, 216.814},
	{380, 186.78, 238.787, 259.373, 268.061, 268.498},
	{390, 46.705, 78.718, 110.275, 169.375, 225.335},
	{400, 26.388, 45.169, 65.247, 108.974, 164.794},
	{410, 23.786, 40.691, 58.942, 99.439, 153.089},
	{420, 24.951, 42.7, 61.778, 103.758, 158.461},
	{430, 28.991, 49.604, 71.421, 118.051, 175.402},
	{440, 45.096, 76.148, 106.964, 165.393, 222.085},
	{450, 112.684, 169.986, 210.797, 253.917, 267.236},
	{460, 44.593, 75.339, 105.915, 164.116, 221.021},
	{470, 45.584, 76.922, 107.96, 166.596, 223.077},
	{480, 53.267, 89.003, 123.267, 184.261, 236.513},
	{490, 65.333, 107.238, 145.334, 206.908, 250.533},
	{500, 83.115, 132.462, 173.692, 231.037, 261.31},
	{510, 109.503, 166.214, 207.361, 252.222, 266.952},
	{520, 148.699, 208.032, 241.267, 264.998, 268.409},
	{530, 202.806, 248.688, 263.607, 268.366, 268.5},
	{540, 254.706, 267.408, 268.443, 268.5, 268.5},
	{550, 268.378, 268.5, 268.5, 268.5, 268.5},
	{560, 268.492, 268.5, 268.5, 268.5, 268.5},
	{570, 264.618, 268.396, 268.498, 268.5, 268.5},
	{580, 225.825, 259.607, 267.073, 268.487, 268.5},
	{590, 169.477, 226.045, 252.694, 267.254, 268.486},
	{600, 126.096, 185.138, 223.868, 259.547, 267.985},
	{610, 100.562, 155.262, 197, 246.58, 265.821},
	{620, 142.872, 202.449, 237.301, 263.966, 268.353},
	{630, 70.782, 115.156, 154.503, 215.319, 254.789},
	{640, 55.721, 92.754, 127.895, 189.274, 239.926},
	{650, 48.816, 82.013, 114.458, 174.271, 229.171},
	{660, 45.037, 76.009, 106.761, 165.123, 221.851},
	{670, 43.486, 73.519, 103.529, 161.161, 218.504},
	{680, 44.042, 74.41, 104.686, 162.585, 219.718},
	{690, 47.096, 79.282, 110.968, 170.168, 225.956},
	{700, 53.758, 89.717, 124.133, 185.19, 237.152},
	{710, 66.557, 108.998, 147.376, 208.818, 251.542},
	{720, 91.233, 143.285, 185.031, 239.082, 263.893},
	{730, 140.376, 199.981, 235.487, 263.451, 268.321},
	{740, 224.861, 259.229, 266.979, 268.485, 268.5},
	{750, 267.298, 268.488, 268.5, 268.5, 268.5},
	{760, 254.056, 267.311, 268.435, 268.5, 268.5},
	{770, 170.824, 227.101, 253.293, 267.342, 268.488},
	{780, 105.847, 161.766, 203.209, 250.051, 266.549},
	{790, 72.285, 117.279, 156.906, 217.416, 255.766},
	{800, 54.521, 90.868, 125.546, 186.72, 238.2},
	{810, 44.476, 75.068, 105.52, 163.586, 220.555},
	{820, 38.541, 65.439, 92.871, 147.574, 206.215},
	{830, 35.027, 59.635, 85.087, 137.185, 196.002},
	{840, 33.11, 56.436, 80.744, 131.213, 189.811},
	{850, 32.404, 55.249, 79.124, 128.95, 187.404},
	{860, 32.8, 55.91, 80.023, 130.205, 188.74},
	{870, 34.461, 58.681, 83.787, 135.403, 194.173},
	{880, 38.028, 64.576, 91.709, 146.036, 204.742},
	{890, 45.513, 76.702, 107.619, 166.123, 222.663},
	{900, 65.017, 106.681, 144.635, 206.205, 250.143},
	{910, 143.517, 203.048, 237.727, 264.08, 268.36},
	{920, 183.334, 236.396, 258.214, 267.949, 268.497},
	{930, 91.309, 143.341, 185.07, 239.097, 263.896},
	{940, 85.428, 135.513, 176.907, 233.391, 262.116},
	{950, 105.077, 160.793, 202.279, 249.542, 266.448},
	{960, 146.858, 206.254, 240.013, 264.683, 268.393},
	{970, 214.1, 254.534, 265.641, 268.452, 268.5},
	{980, 264.969, 268.413, 268.499, 268.5, 268.5},
	{990, 268.311, 268.5, 268.5, 268.5, 268.5},
	{1000, 251.681, 266.921, 268.4, 268.5, 268.5},
}