// SPDX-License-Identifier: Apache-2.0

package gmpe

// Coefficient tables from Bindi et al. (2014), electronic supplementary
// material. The EC8 tables carry the Eurocode 8 class terms; the other
// two carry the continuous vs30 slope gamma.

var coeffsRjb = CoeffsTable{rows: map[string]Coeffs{
	"PGV": {E1: 2.26481, C1: -1.22408, C2: 0.202085, H: 5.06124, B1: 0.162802, B2: -0.0926324, B3: 0.0440301, Gamma: -0.529443, SofN: -0.00947675, SofR: 0.0400574, SofS: -0.0305805, Tau: 0.156062, Phi: 0.277714, PhiS2S: 0.120398, Sigma: 0.31856},
	"PGA": {E1: 3.32819, C1: -1.2398, C2: 0.21732, H: 5.26486, C3: 0.00118624, B1: -0.0855045, B2: -0.0925639, Gamma: -0.301899, SofN: -0.0397695, SofR: 0.0775253, SofS: -0.0377558, Tau: 0.149977, Phi: 0.282398, PhiS2S: 0.165611, Sigma: 0.319753},
	"SA(0.02)": {E1: 3.37053, C1: -1.26358, C2: 0.220527, H: 5.20082, C3: 0.00111816, B1: -0.0890554, B2: -0.0916152, Gamma: -0.294021, SofN: -0.039236, SofR: 0.0810516, SofS: -0.0418156, Tau: 0.15867, Phi: 0.282356, PhiS2S: 0.183959, Sigma: 0.323885},
	"SA(0.04)": {E1: 3.43922, C1: -1.31025, C2: 0.244676, H: 4.91669, C3: 0.00109183, B1: -0.116919, B2: -0.0783789, Gamma: -0.241765, SofN: -0.0377204, SofR: 0.0797783, SofS: -0.0420579, Tau: 0.154621, Phi: 0.291143, PhiS2S: 0.187409, Sigma: 0.329654},
	"SA(0.07)": {E1: 3.59651, C1: -1.29051, C2: 0.231878, H: 5.35922, C3: 0.00182094, B1: -0.0850124, B2: -0.0569968, Gamma: -0.207629, SofN: -0.0459437, SofR: 0.0874968, SofS: -0.041553, Tau: 0.172785, Phi: 0.291499, PhiS2S: 0.199913, Sigma: 0.33886},
	"SA(0.1)": {E1: 3.68638, C1: -1.28178, C2: 0.219406, H: 6.12146, C3: 0.00211443, B1: -0.11355, B2: -0.0753325, Gamma: -0.173237, SofN: -0.0380528, SofR: 0.0847103, SofS: -0.0466585, Tau: 0.169691, Phi: 0.301967, PhiS2S: 0.208178, Sigma: 0.346379},
	"SA(0.15)": {E1: 3.68632, C1: -1.17697, C2: 0.182662, H: 5.74154, C3: 0.00254027, B1: -0.0928726, B2: -0.102433, B3: 0.0739042, Gamma: -0.202492, SofN: -0.0267293, SofR: 0.0678441, SofS: -0.0411147, Tau: 0.152902, Phi: 0.305804, PhiS2S: 0.212124, Sigma: 0.3419},
	"SA(0.2)": {E1: 3.68262, C1: -1.10301, C2: 0.133154, H: 5.31998, C3: 0.00242089, B1: 0.0100857, B2: -0.105184, B3: 0.150461, Gamma: -0.291228, SofN: -0.0326537, SofR: 0.0759769, SofS: -0.0433232, Tau: 0.150055, Phi: 0.300109, PhiS2S: 0.190469, Sigma: 0.335532},
	"SA(0.26)": {E1: 3.64314, C1: -1.08527, C2: 0.115603, H: 5.13455, C3: 0.00196437, B1: 0.0299397, B2: -0.127173, B3: 0.178899, Gamma: -0.354425, SofN: -0.0338438, SofR: 0.074982, SofS: -0.0411381, Tau: 0.151209, Phi: 0.302419, PhiS2S: 0.187037, Sigma: 0.338114},
	"SA(0.3)": {E1: 3.63985, C1: -1.10591, C2: 0.108276, H: 5.12846, C3: 0.00149922, B1: 0.0391904, B2: -0.138578, B3: 0.189682, Gamma: -0.39306, SofN: -0.0372453, SofR: 0.0767011, SofS: -0.0394559, Tau: 0.157946, Phi: 0.297402, PhiS2S: 0.174118, Sigma: 0.336741},
	"SA(0.36)": {E1: 3.5748, C1: -1.09955, C2: 0.103083, H: 4.90557, C3: 0.00104905, B1: 0.052103, B2: -0.151385, B3: 0.216011, Gamma: -0.453905, SofN: -0.0279067, SofR: 0.0697898, SofS: -0.0418832, Tau: 0.165436, Phi: 0.294395, PhiS2S: 0.175848, Sigma: 0.337694},
	"SA(0.4)": {E1: 3.53006, C1: -1.09538, C2: 0.101111, H: 4.95386, C3: 0.000851474, B1: 0.0458464, B2: -0.16209, B3: 0.224827, Gamma: -0.492063, SofN: -0.0256309, SofR: 0.0725668, SofS: -0.046936, Tau: 0.157728, Phi: 0.296992, PhiS2S: 0.169883, Sigma: 0.336278},
	"SA(0.46)": {E1: 3.43387, C1: -1.06586, C2: 0.109066, H: 4.6599, C3: 0.000868165, B1: 0.0600838, B2: -0.165897, B3: 0.197716, Gamma: -0.564463, SofN: -0.0186635, SofR: 0.0645993, SofS: -0.0459358, Tau: 0.173005, Phi: 0.291868, PhiS2S: 0.164162, Sigma: 0.33929},
	"SA(0.5)": {E1: 3.40554, C1: -1.05767, C2: 0.112197, H: 4.43205, C3: 0.000788528, B1: 0.0883189, B2: -0.164108, B3: 0.15475, Gamma: -0.596196, SofN: -0.0174194, SofR: 0.0602826, SofS: -0.0428632, Tau: 0.18082, Phi: 0.289957, PhiS2S: 0.16509, Sigma: 0.341717},
	"SA(0.6)": {E1: 3.30442, C1: -1.05014, C2: 0.121734, H: 4.21657, C3: 0.000487285, B1: 0.120182, B2: -0.163325, B3: 0.117576, Gamma: -0.667824, SofN: -0.000486417, SofR: 0.0449209, SofS: -0.0444345, Tau: 0.182233, Phi: 0.292223, PhiS2S: 0.175634, Sigma: 0.344388},
	"SA(0.7)": {E1: 3.23882, C1: -1.05021, C2: 0.114674, H: 4.17127, C3: 0.000159408, B1: 0.166933, B2: -0.161112, B3: 0.112005, Gamma: -0.73839, SofN: 0.0112033, SofR: 0.0281506, SofS: -0.0393539, Tau: 0.189396, Phi: 0.289307, PhiS2S: 0.168617, Sigma: 0.345788},
	"SA(0.8)": {E1: 3.1537, C1: -1.04654, C2: 0.129522, H: 4.20016, B1: 0.193817, B2: -0.156553, B3: 0.0517285, Gamma: -0.794076, SofN: 0.0165258, SofR: 0.0203522, SofS: -0.0368783, Tau: 0.189074, Phi: 0.288815, PhiS2S: 0.16817, Sigma: 0.3452},
	"SA(0.9)": {E1: 3.13481, C1: -1.04612, C2: 0.114536, H: 4.48003, B1: 0.247547, B2: -0.153819, B3: 0.0815754, Gamma: -0.821699, SofN: 0.0164493, SofR: 0.0212422, SofS: -0.0376913, Tau: 0.191986, Phi: 0.293264, PhiS2S: 0.183719, Sigma: 0.350517},
	"SA(1)": {E1: 3.12474, C1: -1.0527, C2: 0.103471, H: 4.41613, B1: 0.306569, B2: -0.147558, B3: 0.0928373, Gamma: -0.826584, SofN: 0.0263071, SofR: 0.0186043, SofS: -0.0449111, Tau: 0.195026, Phi: 0.297907, PhiS2S: 0.200775, Sigma: 0.356067},
	"SA(1.3)": {E1: 2.89841, C1: -0.973828, C2: 0.104898, H: 4.25821, B1: 0.349119, B2: -0.149483, B3: 0.108209, Gamma: -0.845047, SofN: 0.0252339, SofR: 0.0223621, SofS: -0.0475957, Tau: 0.181782, Phi: 0.306676, PhiS2S: 0.209625, Sigma: 0.356504},
	"SA(1.5)": {E1: 2.84727, C1: -0.983388, C2: 0.109072, H: 4.56697, B1: 0.384546, B2: -0.139867, B3: 0.0987372, Gamma: -0.8232, SofN: 0.0186738, SofR: 0.0230894, SofS: -0.041763, Tau: 0.177752, Phi: 0.316312, PhiS2S: 0.218569, Sigma: 0.362835},
	"SA(1.8)": {E1: 2.68016, C1: -0.983082, C2: 0.164027, H: 4.68008, B1: 0.343663, B2: -0.135933, Gamma: -0.778657, SofN: 0.0113713, SofR: 0.0166882, SofS: -0.0280594, Tau: 0.163242, Phi: 0.326484, PhiS2S: 0.221367, Sigma: 0.36502},
	"SA(2)": {E1: 2.60171, C1: -0.979215, C2: 0.163344, H: 4.58186, B1: 0.331747, B2: -0.148282, Gamma: -0.769243, SofN: 0.00553545, SofR: 0.0198566, SofS: -0.025392, Tau: 0.164958, Phi: 0.329916, PhiS2S: 0.22535, Sigma: 0.368857},
	"SA(2.6)": {E1: 2.39067, C1: -0.977532, C2: 0.211831, H: 5.39517, B1: 0.357514, B2: -0.122539, Gamma: -0.769609, SofN: 0.0087346, SofR: 0.0233142, SofS: -0.0320486, Tau: 0.17028, Phi: 0.320626, PhiS2S: 0.210193, Sigma: 0.363037},
	"SA(3)": {E1: 2.25399, C1: -0.940373, C2: 0.227241, H: 5.74173, B1: 0.385526, B2: -0.111445, Gamma: -0.732072, SofN: 0.0229893, SofR: -0.020662, SofS: -0.00232715, Tau: 0.176546, Phi: 0.314165, PhiS2S: 0.207247, Sigma: 0.360373},
}}

var coeffsRjbEC8 = CoeffsTable{rows: map[string]Coeffs{
	"PGV": {E1: 2.37522, C1: -1.3047, C2: 0.20946, H: 5.76191, B1: 0.273952, B2: -0.0514249, EB: 0.122258, EC: 0.276738, ED: 0.380306, SofN: -0.00182721, SofR: 0.0574989, SofS: 0.0226578, Tau: 0.186089, Phi: 0.271268, PhiS2S: 0.177104, Sigma: 0.328961},
	"PGA": {E1: 3.45078, C1: -1.36061, C2: 0.215873, H: 6.14717, C3: 0.000732525, B1: -0.0208715, B2: -0.0722425, EB: 0.137715, EC: 0.233048, ED: 0.214227, SofN: -0.0322846, SofR: 0.0736778, SofS: -0.0194313, Tau: 0.180904, Phi: 0.276335, PhiS2S: 0.206288, Sigma: 0.330284},
	"SA(0.02)": {E1: 3.47806, C1: -1.37519, C2: 0.218095, H: 5.90684, C3: 0.000710063, B1: -0.026825, B2: -0.0726043, EB: 0.134904, EC: 0.226827, ED: 0.213357, SofN: -0.0280853, SofR: 0.0775318, SofS: -0.0206414, Tau: 0.182533, Phi: 0.278823, PhiS2S: 0.208393, Sigma: 0.333258},
	"SA(0.04)": {E1: 3.58006, C1: -1.43327, C2: 0.238839, H: 5.79394, C3: 0.000685158, B1: -0.0568751, B2: -0.0637298, EB: 0.133973, EC: 0.218136, ED: 0.176183, SofN: -0.0386612, SofR: 0.060308, SofS: -0.0334023, Tau: 0.18063, Phi: 0.289652, PhiS2S: 0.220859, Sigma: 0.341358},
	"SA(0.07)": {E1: 3.78163, C1: -1.46134, C2: 0.225844, H: 6.62019, C3: 0.00117568, B1: -0.043052, B2: -0.049789, EB: 0.139714, EC: 0.206862, ED: 0.145621, SofN: -0.0388934, SofR: 0.0712603, SofS: -0.0273639, Tau: 0.194176, Phi: 0.296609, PhiS2S: 0.235714, Sigma: 0.354515},
	"SA(0.1)": {E1: 3.7926, C1: -1.41441, C2: 0.208667, H: 6.89248, C3: 0.00160179, B1: -0.0584518, B2: -0.0644335, EB: 0.155236, EC: 0.210168, ED: 0.156052, SofN: -0.0195457, SofR: 0.0842461, SofS: -0.0228315, Tau: 0.181926, Phi: 0.306918, PhiS2S: 0.244969, Sigma: 0.356785},
	"SA(0.15)": {E1: 3.77838, C1: -1.29344, C2: 0.16355, H: 6.71735, C3: 0.00202882, B1: -0.0358636, B2: -0.0915379, B3: 0.0855372, EB: 0.158937, EC: 0.199726, ED: 0.186495, SofN: -0.0205578, SofR: 0.074269, SofS: -0.0267287, Tau: 0.18138, Phi: 0.305998, PhiS2S: 0.241833, Sigma: 0.355716},
	"SA(0.2)": {E1: 3.69276, C1: -1.18195, C2: 0.119101, H: 5.78659, C3: 0.0021229, B1: 0.0672019, B2: -0.0915054, B3: 0.145251, EB: 0.138968, EC: 0.216584, ED: 0.1995, SofN: 0.0189532, SofR: 0.133352, SofS: 0.0266652, Tau: 0.177903, Phi: 0.300131, PhiS2S: 0.219913, Sigma: 0.348896},
	"SA(0.26)": {E1: 3.6761, C1: -1.16549, C2: 0.102609, H: 5.45192, C3: 0.00165361, B1: 0.129716, B2: -0.0975145, B3: 0.135986, EB: 0.126737, EC: 0.249141, ED: 0.229736, SofN: 0.0235627, SofR: 0.143428, SofS: 0.0392335, Tau: 0.178211, Phi: 0.300652, PhiS2S: 0.200662, Sigma: 0.349501},
	"SA(0.3)": {E1: 3.66966, C1: -1.1752, C2: 0.099164, H: 5.40732, C3: 0.0012478, B1: 0.145499, B2: -0.10488, B3: 0.135159, EB: 0.113881, EC: 0.259274, ED: 0.252504, SofN: 0.0184383, SofR: 0.138662, SofS: 0.0434893, Tau: 0.184254, Phi: 0.295463, PhiS2S: 0.193285, Sigma: 0.348207},
	"SA(0.36)": {E1: 3.59721, C1: -1.14479, C2: 0.0950077, H: 5.02064, C3: 0.000918966, B1: 0.168179, B2: -0.114223, B3: 0.149582, EB: 0.109638, EC: 0.274211, ED: 0.282686, SofN: 0.0126751, SofR: 0.122472, SofS: 0.0366617, Tau: 0.184085, Phi: 0.295192, PhiS2S: 0.187569, Sigma: 0.347887},
	"SA(0.4)": {E1: 3.55671, C1: -1.1452, C2: 0.0943173, H: 5.08066, C3: 0.000672779, B1: 0.173884, B2: -0.120149, B3: 0.151849, EB: 0.110223, EC: 0.280836, ED: 0.301657, SofN: 0.0221499, SofR: 0.129181, SofS: 0.0461228, Tau: 0.191734, Phi: 0.292878, PhiS2S: 0.180758, Sigma: 0.350056},
	"SA(0.46)": {E1: 3.50177, C1: -1.1308, C2: 0.100456, H: 4.95777, C3: 0.00058316, B1: 0.190813, B2: -0.123177, B3: 0.130847, EB: 0.108079, EC: 0.298022, ED: 0.34708, SofN: 0.0171645, SofR: 0.115968, SofS: 0.0447782, Tau: 0.19969, Phi: 0.291096, PhiS2S: 0.182941, Sigma: 0.353006},
	"SA(0.5)": {E1: 3.45717, C1: -1.11631, C2: 0.101994, H: 4.69877, C3: 0.000508794, B1: 0.203522, B2: -0.126077, B3: 0.122339, EB: 0.108783, EC: 0.305295, ED: 0.370989, SofN: 0.0167117, SofR: 0.114252, SofS: 0.0498222, Tau: 0.200063, Phi: 0.29164, PhiS2S: 0.175988, Sigma: 0.353665},
	"SA(0.6)": {E1: 3.38799, C1: -1.1047, C2: 0.104529, H: 4.54643, C3: 0.000249318, B1: 0.242603, B2: -0.126011, B3: 0.0959648, EB: 0.106929, EC: 0.321296, ED: 0.440581, SofN: 0.0136945, SofR: 0.100223, SofS: 0.0420176, Tau: 0.207756, Phi: 0.289459, PhiS2S: 0.176453, Sigma: 0.356299},
	"SA(0.7)": {E1: 3.34381, C1: -1.11609, C2: 0.0999892, H: 4.64017, B1: 0.280922, B2: -0.124614, B3: 0.0920475, EB: 0.102965, EC: 0.331801, ED: 0.503562, SofN: 0.0243993, SofR: 0.0921893, SofS: 0.0496086, Tau: 0.208828, Phi: 0.290952, PhiS2S: 0.178954, Sigma: 0.358137},
	"SA(0.8)": {E1: 3.25802, C1: -1.10907, C2: 0.119754, H: 4.63849, B1: 0.291242, B2: -0.122604, B3: 0.0327477, EB: 0.0974809, EC: 0.341281, ED: 0.542709, SofN: 0.0244827, SofR: 0.0787394, SofS: 0.0492262, Tau: 0.211136, Phi: 0.294168, PhiS2S: 0.18031, Sigma: 0.362096},
	"SA(0.9)": {E1: 3.16899, C1: -1.08714, C2: 0.117879, H: 4.50481, B1: 0.311362, B2: -0.12373, B3: 0.0525761, EB: 0.0870567, EC: 0.342803, ED: 0.581633, SofN: 0.0423755, SofR: 0.0912537, SofS: 0.0684516, Tau: 0.220213, Phi: 0.293618, PhiS2S: 0.194549, Sigma: 0.367022},
	"SA(1)": {E1: 3.14649, C1: -1.09387, C2: 0.114285, H: 4.53118, B1: 0.359324, B2: -0.117738, B3: 0.0445842, EB: 0.0864957, EC: 0.34521, ED: 0.590175, SofN: 0.0536792, SofR: 0.0913821, SofS: 0.0674554, Tau: 0.221524, Phi: 0.295365, PhiS2S: 0.196091, Sigma: 0.369206},
	"SA(1.3)": {E1: 2.89515, C1: -1.03042, C2: 0.136666, H: 4.53208, B1: 0.393471, B2: -0.115441, EB: 0.0920913, EC: 0.345292, ED: 0.618805, SofN: 0.087972, SofR: 0.119863, SofS: 0.100768, Tau: 0.222493, Phi: 0.296657, PhiS2S: 0.196817, Sigma: 0.370822},
	"SA(1.5)": {E1: 2.76366, C1: -1.01437, C2: 0.1441, H: 4.61172, B1: 0.432513, B2: -0.104296, EB: 0.103385, EC: 0.342842, ED: 0.653192, SofN: 0.123393, SofR: 0.165217, SofS: 0.143638, Tau: 0.218105, Phi: 0.303878, PhiS2S: 0.19849, Sigma: 0.374047},
	"SA(1.8)": {E1: 2.63662, C1: -1.04838, C2: 0.180838, H: 5.39607, B1: 0.434162, B2: -0.0962979, EB: 0.107251, EC: 0.333706, ED: 0.618956, SofN: 0.161886, SofR: 0.193198, SofS: 0.201695, Tau: 0.212905, Phi: 0.31036, PhiS2S: 0.201126, Sigma: 0.376367},
	"SA(2)": {E1: 2.6215, C1: -1.0543, C2: 0.181367, H: 5.56772, B1: 0.458752, B2: -0.0955763, EB: 0.099358, EC: 0.329709, ED: 0.604177, SofN: 0.139794, SofR: 0.167929, SofS: 0.185814, Tau: 0.22224, Phi: 0.309638, PhiS2S: 0.202676, Sigma: 0.381138},
	"SA(2.6)": {E1: 2.46318, C1: -1.07308, C2: 0.226407, H: 6.23491, B1: 0.475305, B2: -0.0788118, EB: 0.105913, EC: 0.312454, ED: 0.577657, SofN: 0.125695, SofR: 0.153396, SofS: 0.173281, Tau: 0.223041, Phi: 0.310755, PhiS2S: 0.20708, Sigma: 0.382513},
	"SA(3)": {E1: 2.3968, C1: -1.05706, C2: 0.248126, H: 6.7674, B1: 0.48108, B2: -0.0719689, EB: 0.127642, EC: 0.318684, ED: 0.597588, SofN: 0.0524242, SofR: 0.0471185, SofS: 0.116645, Tau: 0.236576, Phi: 0.302186, PhiS2S: 0.21241, Sigma: 0.383777},
}}

var coeffsRhyp = CoeffsTable{rows: map[string]Coeffs{
	"PGV": {E1: 3.24249, C1: -1.57556, C2: 0.0791774, H: 4.38918, B1: 0.472433, B2: -0.0725484, B3: 0.436952, Gamma: -0.508833, SofN: -0.0157195, SofR: 0.0713859, SofS: -0.055666, Tau: 0.193206, Phi: 0.295126, PhiS2S: 0.178867, Sigma: 0.352744},
	"PGA": {E1: 4.27391, C1: -1.57821, C2: 0.108218, H: 4.82743, C3: 9.63923e-05, B1: 0.217109, B2: -0.0682563, B3: 0.352976, Gamma: -0.293242, SofN: -0.0472145, SofR: 0.110979, SofS: -0.0637639, Tau: 0.145783, Phi: 0.291566, PhiS2S: 0.186662, Sigma: 0.325981},
	"SA(0.02)": {E1: 4.3397, C1: -1.60402, C2: 0.103401, H: 4.47852, C3: 2.63293e-05, B1: 0.230422, B2: -0.0665354, B3: 0.363906, Gamma: -0.286524, SofN: -0.0469231, SofR: 0.115063, SofS: -0.06814, Tau: 0.154538, Phi: 0.290986, PhiS2S: 0.18825, Sigma: 0.329477},
	"SA(0.04)": {E1: 4.46839, C1: -1.68536, C2: 0.126703, H: 4.58063, B1: 0.205651, B2: -0.0528102, B3: 0.323734, Gamma: -0.232462, SofN: -0.0451723, SofR: 0.114597, SofS: -0.069425, Tau: 0.158402, Phi: 0.298261, PhiS2S: 0.192664, Sigma: 0.337714},
	"SA(0.07)": {E1: 4.5724, C1: -1.63863, C2: 0.123954, H: 5.12096, C3: 0.00072223, B1: 0.226272, B2: -0.0298015, B3: 0.311109, Gamma: -0.195629, SofN: -0.053205, SofR: 0.121653, SofS: -0.0684477, Tau: 0.169775, Phi: 0.302117, PhiS2S: 0.205229, Sigma: 0.346552},
	"SA(0.1)": {E1: 4.55255, C1: -1.57947, C2: 0.125609, H: 5.67511, C3: 0.00123904, B1: 0.167382, B2: -0.0509066, B3: 0.348968, Gamma: -0.168432, SofN: -0.0470393, SofR: 0.119021, SofS: -0.0719821, Tau: 0.165148, Phi: 0.310963, PhiS2S: 0.212643, Sigma: 0.352097},
	"SA(0.15)": {E1: 4.51119, C1: -1.4471, C2: 0.0846097, H: 4.8248, C3: 0.00169202, B1: 0.194714, B2: -0.0784507, B3: 0.448903, Gamma: -0.194539, SofN: -0.0363123, SofR: 0.102481, SofS: -0.0661686, Tau: 0.145533, Phi: 0.310621, PhiS2S: 0.216313, Sigma: 0.343023},
	"SA(0.2)": {E1: 4.49571, C1: -1.37039, C2: 0.0385358, H: 4.56965, C3: 0.00158593, B1: 0.289627, B2: -0.0815499, B3: 0.533244, Gamma: -0.270912, SofN: -0.0386754, SofR: 0.107555, SofS: -0.0688793, Tau: 0.144701, Phi: 0.308845, PhiS2S: 0.20204, Sigma: 0.341063},
	"SA(0.26)": {E1: 4.49224, C1: -1.36679, C2: 0.0129374, H: 3.94802, C3: 0.00105878, B1: 0.321065, B2: -0.104184, B3: 0.596455, Gamma: -0.323555, SofN: -0.0365771, SofR: 0.103236, SofS: -0.0666589, Tau: 0.156869, Phi: 0.313737, PhiS2S: 0.199484, Sigma: 0.350769},
	"SA(0.3)": {E1: 4.51726, C1: -1.40078, C2: 0.00197997, H: 4.26816, C3: 0.000564819, B1: 0.336096, B2: -0.115261, B3: 0.612107, Gamma: -0.363199, SofN: -0.038065, SofR: 0.104818, SofS: -0.0667532, Tau: 0.165195, Phi: 0.311052, PhiS2S: 0.186722, Sigma: 0.352197},
	"SA(0.36)": {E1: 4.46559, C1: -1.40973, C2: 0.000488761, H: 4.39978, C3: 5.96605e-05, B1: 0.346351, B2: -0.127114, B3: 0.600314, Gamma: -0.430464, SofN: -0.0285343, SofR: 0.0955093, SofS: -0.0669749, Tau: 0.164907, Phi: 0.310509, PhiS2S: 0.180734, Sigma: 0.351583},
	"SA(0.4)": {E1: 4.46834, C1: -1.42893, C2: -0.00909559, H: 4.6039, B1: 0.353351, B2: -0.137776, B3: 0.621323, Gamma: -0.467397, SofN: -0.0261626, SofR: 0.0971983, SofS: -0.0710355, Tau: 0.165146, Phi: 0.310959, PhiS2S: 0.182064, Sigma: 0.352092},
	"SA(0.46)": {E1: 4.3715, C1: -1.40655, C2: 0.00100953, H: 4.60254, B1: 0.35717, B2: -0.142768, B3: 0.589127, Gamma: -0.531694, SofN: -0.0192819, SofR: 0.090202, SofS: -0.0709198, Tau: 0.181401, Phi: 0.306033, PhiS2S: 0.176797, Sigma: 0.355756},
	"SA(0.5)": {E1: 4.34198, C1: -1.39751, C2: 0.00423803, H: 4.43045, B1: 0.384532, B2: -0.140916, B3: 0.543301, Gamma: -0.555531, SofN: -0.0175798, SofR: 0.0860123, SofS: -0.0684321, Tau: 0.189686, Phi: 0.304174, PhiS2S: 0.178065, Sigma: 0.358473},
	"SA(0.6)": {E1: 4.21495, C1: -1.37919, C2: 0.013733, H: 3.69615, B1: 0.40872, B2: -0.141998, B3: 0.504772, Gamma: -0.627036, SofN: 0.00115693, SofR: 0.0712886, SofS: -0.0701314, Tau: 0.200502, Phi: 0.30627, PhiS2S: 0.189183, Sigma: 0.366066},
	"SA(0.7)": {E1: 4.14832, C1: -1.37169, C2: 0.00226411, H: 3.00978, B1: 0.466754, B2: -0.138065, B3: 0.498126, Gamma: -0.698998, SofN: 0.0100027, SofR: 0.0543876, SofS: -0.06439, Tau: 0.20181, Phi: 0.30827, PhiS2S: 0.264361, Sigma: 0.368453},
	"SA(0.8)": {E1: 4.09246, C1: -1.37736, C2: 0.008956, H: 3.15727, B1: 0.510102, B2: -0.13263, B3: 0.437529, Gamma: -0.757522, SofN: 0.0150184, SofR: 0.0458647, SofS: -0.0608828, Tau: 0.211664, Phi: 0.30855, PhiS2S: 0.208994, Sigma: 0.374172},
	"SA(0.9)": {E1: 4.08324, C1: -1.38649, C2: -0.00453151, H: 3.4537, B1: 0.567727, B2: -0.127244, B3: 0.45811, Gamma: -0.786632, SofN: 0.0163802, SofR: 0.0442236, SofS: -0.0606035, Tau: 0.225279, Phi: 0.313873, PhiS2S: 0.225906, Sigma: 0.386351},
	"SA(1)": {E1: 4.07207, C1: -1.38735, C2: -0.0185458, H: 3.3163, B1: 0.631338, B2: -0.121241, B3: 0.474982, Gamma: -0.791438, SofN: 0.0263957, SofR: 0.0411366, SofS: -0.0675319, Tau: 0.238973, Phi: 0.318631, PhiS2S: 0.246861, Sigma: 0.398289},
	"SA(1.3)": {E1: 3.77954, C1: -1.27343, C2: -0.0137662, H: 3.04976, B1: 0.650829, B2: -0.129005, B3: 0.488244, Gamma: -0.803656, SofN: 0.024922, SofR: 0.038329, SofS: -0.0632507, Tau: 0.212162, Phi: 0.324083, PhiS2S: 0.245588, Sigma: 0.387354},
	"SA(1.5)": {E1: 3.69447, C1: -1.26477, C2: -0.00337334, H: 3.65482, B1: 0.6746, B2: -0.119081, B3: 0.461122, Gamma: -0.780198, SofN: 0.0191231, SofR: 0.0386966, SofS: -0.0578195, Tau: 0.208441, Phi: 0.33425, PhiS2S: 0.24415, Sigma: 0.393917},
	"SA(1.8)": {E1: 3.45408, C1: -1.27364, C2: 0.083746, H: 4.59988, B1: 0.563304, B2: -0.117803, B3: 0.184126, Gamma: -0.749008, SofN: 0.0116759, SofR: 0.029249, SofS: -0.0409247, Tau: 0.203238, Phi: 0.342873, PhiS2S: 0.256308, Sigma: 0.398582},
	"SA(2)": {E1: 3.38901, C1: -1.28283, C2: 0.086724, H: 4.95285, B1: 0.548353, B2: -0.129571, B3: 0.171017, Gamma: -0.744073, SofN: 0.00499277, SofR: 0.0335873, SofS: -0.0385798, Tau: 0.205751, Phi: 0.347114, PhiS2S: 0.26183, Sigma: 0.403511},
	"SA(2.6)": {E1: 3.06601, C1: -1.23427, C2: 0.150146, H: 4.45511, B1: 0.54175, B2: -0.103699, B3: 0.00930258, Gamma: -0.744468, SofN: 0.00602681, SofR: 0.0305081, SofS: -0.0365347, Tau: 0.190711, Phi: 0.339373, PhiS2S: 0.242015, Sigma: 0.389288},
	"SA(3)": {E1: 2.89391, C1: -1.16461, C2: 0.162354, H: 4.62321, B1: 0.590765, B2: -0.0853286, B3: 0.0340584, Gamma: -0.693999, SofN: 0.0186211, SofR: -0.0189824, SofS: 0.000361328, Tau: 0.183363, Phi: 0.326297, PhiS2S: 0.22865, Sigma: 0.374289},
}}

var coeffsRhypEC8 = CoeffsTable{rows: map[string]Coeffs{
	"PGV": {E1: 3.29261, C1: -1.66548, C2: 0.136478, H: 6.31013, B1: 0.436373, B2: -0.0497202, B3: 0.264336, EB: 0.130319, EC: 0.272298, ED: 0.35087, SofN: -0.0908699, SofR: 0.0132825, SofS: -0.0673815, Tau: 0.241933, Phi: 0.284305, PhiS2S: 0.231138, Sigma: 0.373311},
	"PGA": {E1: 4.36693, C1: -1.75212, C2: 0.150507, H: 7.32192, B1: 0.144291, B2: -0.0660811, B3: 0.284211, EB: 0.143778, EC: 0.231064, ED: 0.187402, SofN: -0.0717451, SofR: 0.0849578, SofS: -0.0570965, Tau: 0.195249, Phi: 0.284622, PhiS2S: 0.213455, Sigma: 0.345155},
	"SA(0.02)": {E1: 4.42044, C1: -1.77754, C2: 0.147715, H: 7.06428, B1: 0.147874, B2: -0.0662056, B3: 0.29709, EB: 0.14111, EC: 0.225339, ED: 0.187033, SofN: -0.0653069, SofR: 0.0917319, SofS: -0.0561255, Tau: 0.197407, Phi: 0.287767, PhiS2S: 0.216309, Sigma: 0.348969},
	"SA(0.04)": {E1: 4.54992, C1: -1.8546, C2: 0.165968, H: 6.98227, B1: 0.124402, B2: -0.056602, B3: 0.260601, EB: 0.14035, EC: 0.21701, ED: 0.146507, SofN: -0.0653792, SofR: 0.0880981, SofS: -0.0576709, Tau: 0.204345, Phi: 0.297881, PhiS2S: 0.222929, Sigma: 0.361234},
	"SA(0.07)": {E1: 4.73285, C1: -1.87822, C2: 0.157048, H: 8.1337, B1: 0.138028, B2: -0.0407865, B3: 0.27609, EB: 0.145543, EC: 0.206101, ED: 0.115846, SofN: -0.0512896, SofR: 0.113143, SofS: -0.037623, Tau: 0.208843, Phi: 0.304438, PhiS2S: 0.242821, Sigma: 0.369185},
	"SA(0.1)": {E1: 4.67503, C1: -1.79917, C2: 0.151808, H: 8.38098, C3: 0.000547866, B1: 0.0988323, B2: -0.056937, B3: 0.322027, EB: 0.158622, EC: 0.208849, ED: 0.125428, SofN: -0.0374868, SofR: 0.120065, SofS: -0.036904, Tau: 0.19539, Phi: 0.31332, PhiS2S: 0.251339, Sigma: 0.369252},
	"SA(0.15)": {E1: 4.56965, C1: -1.61405, C2: 0.105601, H: 7.49625, C3: 0.00118341, B1: 0.125747, B2: -0.0835009, B3: 0.464456, EB: 0.162534, EC: 0.197589, ED: 0.158161, SofN: -0.0470896, SofR: 0.0980456, SofS: -0.0506056, Tau: 0.193856, Phi: 0.310861, PhiS2S: 0.247987, Sigma: 0.366353},
	"SA(0.2)": {E1: 4.45017, C1: -1.46501, C2: 0.0567545, H: 6.27222, C3: 0.00143081, B1: 0.236642, B2: -0.0834639, B3: 0.542025, EB: 0.143446, EC: 0.213637, ED: 0.170195, SofN: -0.0214483, SofR: 0.139454, SofS: -0.0124596, Tau: 0.191231, Phi: 0.306652, PhiS2S: 0.226544, Sigma: 0.361392},
	"SA(0.26)": {E1: 4.45593, C1: -1.44342, C2: 0.0320613, H: 5.4804, C3: 0.000981683, B1: 0.313239, B2: -0.0897176, B3: 0.555789, EB: 0.133443, EC: 0.244854, ED: 0.202162, SofN: -0.030488, SofR: 0.132769, SofS: -0.0151551, Tau: 0.192222, Phi: 0.308241, PhiS2S: 0.214042, Sigma: 0.363266},
	"SA(0.3)": {E1: 4.47171, C1: -1.46016, C2: 0.0259272, H: 5.50316, C3: 0.000554376, B1: 0.332549, B2: -0.0972179, B3: 0.551296, EB: 0.121637, EC: 0.254554, ED: 0.226009, SofN: -0.0422691, SofR: 0.119803, SofS: -0.0192266, Tau: 0.199096, Phi: 0.304125, PhiS2S: 0.207111, Sigma: 0.363499},
	"SA(0.36)": {E1: 4.38799, C1: -1.41842, C2: 0.0221503, H: 4.76952, C3: 0.000268748, B1: 0.355357, B2: -0.106041, B3: 0.543724, EB: 0.118062, EC: 0.268087, ED: 0.258058, SofN: -0.056669, SofR: 0.092863, SofS: -0.0349603, Tau: 0.199491, Phi: 0.304728, PhiS2S: 0.201784, Sigma: 0.36422},
	"SA(0.4)": {E1: 4.37609, C1: -1.42843, C2: 0.0169024, H: 4.81974, B1: 0.368987, B2: -0.111955, B3: 0.547881, EB: 0.119481, EC: 0.275041, ED: 0.275672, SofN: -0.0532676, SofR: 0.09198, SofS: -0.0321883, Tau: 0.207716, Phi: 0.302796, PhiS2S: 0.194828, Sigma: 0.367194},
	"SA(0.46)": {E1: 4.33372, C1: -1.42503, C2: 0.0259033, H: 5.10961, B1: 0.379142, B2: -0.115152, B3: 0.511833, EB: 0.117659, EC: 0.291964, ED: 0.321124, SofN: -0.0625095, SofR: 0.0737723, SofS: -0.039294, Tau: 0.216313, Phi: 0.30138, PhiS2S: 0.197633, Sigma: 0.370974},
	"SA(0.5)": {E1: 4.29359, C1: -1.41465, C2: 0.0283675, H: 4.95519, B1: 0.38941, B2: -0.118151, B3: 0.495459, EB: 0.118871, EC: 0.29887, ED: 0.344584, SofN: -0.0647379, SofR: 0.0694487, SofS: -0.0374142, Tau: 0.225415, Phi: 0.300553, PhiS2S: 0.198934, Sigma: 0.375691},
	"SA(0.6)": {E1: 4.23915, C1: -1.40603, C2: 0.0269799, H: 4.63597, B1: 0.430341, B2: -0.119284, B3: 0.475308, EB: 0.117717, EC: 0.314097, ED: 0.412316, SofN: -0.0760753, SofR: 0.0458706, SofS: -0.0548805, Tau: 0.234484, Phi: 0.299514, PhiS2S: 0.208675, Sigma: 0.380383},
	"SA(0.7)": {E1: 4.19696, C1: -1.41297, C2: 0.0208757, H: 4.29377, B1: 0.470648, B2: -0.118095, B3: 0.460014, EB: 0.115734, EC: 0.325887, ED: 0.477053, SofN: -0.0749564, SofR: 0.0285745, SofS: -0.0556444, Tau: 0.246498, Phi: 0.301897, PhiS2S: 0.212696, Sigma: 0.389747},
	"SA(0.8)": {E1: 4.11453, C1: -1.40429, C2: 0.0381464, H: 4.01059, B1: 0.481962, B2: -0.116743, B3: 0.393948, EB: 0.110981, EC: 0.334461, ED: 0.51753, SofN: -0.0816278, SofR: 0.00842881, SofS: -0.0634344, Tau: 0.249844, Phi: 0.305995, PhiS2S: 0.224068, Sigma: 0.395038},
	"SA(0.9)": {E1: 4.03249, C1: -1.38977, C2: 0.0370935, H: 3.97812, B1: 0.504043, B2: -0.116645, B3: 0.400442, EB: 0.103765, EC: 0.334934, ED: 0.559004, SofN: -0.0642914, SofR: 0.0194984, SofS: -0.0456158, Tau: 0.261433, Phi: 0.30722, PhiS2S: 0.240384, Sigma: 0.403399},
	"SA(1)": {E1: 4.0114, C1: -1.39543, C2: 0.0340614, H: 4.09668, B1: 0.550001, B2: -0.11086, B3: 0.386023, EB: 0.103026, EC: 0.336196, ED: 0.566463, SofN: -0.0571675, SofR: 0.0148925, SofS: -0.0513884, Tau: 0.274446, Phi: 0.309616, PhiS2S: 0.244465, Sigma: 0.413742},
	"SA(1.3)": {E1: 3.68402, C1: -1.30231, C2: 0.0695345, H: 3.7329, B1: 0.544404, B2: -0.113618, B3: 0.282169, EB: 0.108865, EC: 0.337519, ED: 0.592894, SofN: -0.0346639, SofR: 0.0298235, SofS: -0.0250789, Tau: 0.26531, Phi: 0.311777, PhiS2S: 0.244067, Sigma: 0.409383},
	"SA(1.5)": {E1: 3.53587, C1: -1.27351, C2: 0.0822458, H: 4.07408, B1: 0.570581, B2: -0.103758, B3: 0.24976, EB: 0.119032, EC: 0.33311, ED: 0.626267, SofN: -0.0106677, SofR: 0.0602666, SofS: 0.00738585, Tau: 0.269363, Phi: 0.316539, PhiS2S: 0.236824, Sigma: 0.415637},
	"SA(1.8)": {E1: 3.46588, C1: -1.36102, C2: 0.137018, H: 6.0971, B1: 0.524014, B2: -0.101089, B3: 0.0469752, EB: 0.123814, EC: 0.323505, ED: 0.60053, SofN: -0.00297454, SofR: 0.0584592, SofS: 0.0394709, Tau: 0.27539, Phi: 0.323622, PhiS2S: 0.257636, Sigma: 0.424936},
	"SA(2)": {E1: 3.4691, C1: -1.38111, C2: 0.137878, H: 6.53917, B1: 0.551312, B2: -0.0987661, EB: 0.115091, EC: 0.320404, ED: 0.586654, SofN: -0.023796, SofR: 0.0349636, SofS: 0.0252703, Tau: 0.277179, Phi: 0.325724, PhiS2S: 0.259839, Sigma: 0.427696},
	"SA(2.6)": {E1: 3.28384, C1: -1.38977, C2: 0.188643, H: 7.04011, B1: 0.547984, B2: -0.0842314, EB: 0.124833, EC: 0.306133, ED: 0.548523, SofN: -0.0506636, SofR: 0.00343515, SofS: 0.0073956, Tau: 0.278908, Phi: 0.327756, PhiS2S: 0.263531, Sigma: 0.430364},
	"SA(3)": {E1: 3.2647, C1: -1.39974, C2: 0.216533, H: 8.33921, B1: 0.552993, B2: -0.0713436, EB: 0.143969, EC: 0.315187, ED: 0.559213, SofN: -0.146666, SofR: -0.128655, SofS: -0.0675673, Tau: 0.283885, Phi: 0.320266, PhiS2S: 0.267078, Sigma: 0.427973},
	"SA(4)": {E1: 3.05192, C1: -1.33328, C2: 0.203724, H: 8.40996, B1: 0.65284, B2: -0.0547906, EB: 0.124787, EC: 0.285654, ED: 0.532224, SofN: -0.14104, SofR: -0.153993, SofS: -0.0599893, Tau: 0.259933, Phi: 0.305458, Sigma: 0.401086},
}}
