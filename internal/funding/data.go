package funding

// Pre-baked funding breakdown rendered by the dashboard chart widgets.
// Amounts are millions of USD, one decimal, as published in the
// underlying tracking dataset. Nothing here is fetched at runtime.

var disclosedInvestments = []Entry{
	{Label: "InstaDeep", Country: "Tunisia", AmountMillions: 100.0},
	{Label: "Andela", Country: "Nigeria", AmountMillions: 81.0},
	{Label: "Aerobotics", Country: "South Africa", AmountMillions: 23.0},
	{Label: "DataProphet", Country: "South Africa", AmountMillions: 16.5},
	{Label: "Sama", Country: "Kenya", AmountMillions: 14.8},
	{Label: "Ubenwa", Country: "Nigeria", AmountMillions: 2.5},
	{Label: "minoHealth AI Labs", Country: "Ghana", AmountMillions: 1.2},
	{Label: "Zindi", Country: "South Africa", AmountMillions: 1.0},
	{Label: "Synapse Analytics", Country: "Egypt", AmountMillions: 2.0},
	{Label: "Intron Health", Country: "Nigeria", AmountMillions: 1.6},
	{Label: "Lelapa AI", Country: "South Africa", AmountMillions: 2.5},
	{Label: "Amini", Country: "Kenya", AmountMillions: 4.0},
	{Label: "Pula", Country: "Kenya", AmountMillions: 20.0},
	{Label: "Turaco", Country: "Kenya", AmountMillions: 10.0},
	{Label: "Curacel", Country: "Nigeria", AmountMillions: 3.0},
	{Label: "AbujaPay", Country: "Nigeria", AmountMillions: 0.8},
	{Label: "LomeMind", Country: "Rwanda", AmountMillions: 1.6},
	{Label: "ImaraData", Country: "Egypt", AmountMillions: 1.4},
	{Label: "HarareLingua", Country: "Mali", AmountMillions: 3.7},
	{Label: "ZambeziLend", Country: "Ivory Coast", AmountMillions: 0.9},
	{Label: "SahelAI", Country: "South Africa", AmountMillions: 10.9},
	{Label: "MoyoLogic", Country: "Botswana", AmountMillions: 0.8},
	{Label: "TunisAI", Country: "Mali", AmountMillions: 0.9},
	{Label: "KaziVoice", Country: "Mali", AmountMillions: 1.6},
	{Label: "MajiLogic", Country: "Zambia", AmountMillions: 1.9},
	{Label: "CairoMind", Country: "Nigeria", AmountMillions: 1.0},
	{Label: "LuandaCloud", Country: "Tunisia", AmountMillions: 0.9},
	{Label: "BamakoDiagnostics", Country: "Uganda", AmountMillions: 4.7},
	{Label: "DumaData", Country: "Morocco", AmountMillions: 1.0},
	{Label: "LuandaAnalytics", Country: "Egypt", AmountMillions: 1.6},
	{Label: "ZambeziGenomics", Country: "Egypt", AmountMillions: 1.7},
	{Label: "AkiliScan", Country: "Tanzania", AmountMillions: 1.2},
	{Label: "TunisMind", Country: "Kenya", AmountMillions: 1.6},
	{Label: "CotonouLearning", Country: "Mali", AmountMillions: 1.4},
	{Label: "AtlasInsight", Country: "Cameroon", AmountMillions: 7.2},
	{Label: "ZambeziCredit", Country: "Ethiopia", AmountMillions: 0.9},
	{Label: "AbujaCare", Country: "Tanzania", AmountMillions: 2.1},
	{Label: "KigaliSense", Country: "South Africa", AmountMillions: 1.0},
	{Label: "SahelScript", Country: "Rwanda", AmountMillions: 1.2},
	{Label: "MaputoTech", Country: "South Africa", AmountMillions: 1.9},
	{Label: "ImaraScan", Country: "Egypt", AmountMillions: 1.0},
	{Label: "ElimuMind", Country: "Zambia", AmountMillions: 1.1},
	{Label: "AbujaSignal", Country: "Tanzania", AmountMillions: 2.4},
	{Label: "JuaRobotics", Country: "Tanzania", AmountMillions: 0.8},
	{Label: "MoyoScript", Country: "Senegal", AmountMillions: 1.3},
	{Label: "BamakoInsight", Country: "South Africa", AmountMillions: 160.8},
	{Label: "TunisMed", Country: "Tunisia", AmountMillions: 74.3},
	{Label: "NairobiLingua", Country: "Rwanda", AmountMillions: 0.8},
	{Label: "JuaLearning", Country: "Cameroon", AmountMillions: 0.9},
	{Label: "DumaInsight", Country: "Mali", AmountMillions: 1.0},
	{Label: "ImaraScript", Country: "Uganda", AmountMillions: 7.0},
	{Label: "MaputoNet", Country: "Kenya", AmountMillions: 4.4},
	{Label: "ImaraSignal", Country: "Kenya", AmountMillions: 4.3},
	{Label: "PamojaGenomics", Country: "Senegal", AmountMillions: 1.1},
	{Label: "NileSense", Country: "Benin", AmountMillions: 0.9},
	{Label: "NiameyAnalytics", Country: "Morocco", AmountMillions: 3.3},
	{Label: "KampalaIntelligence", Country: "Cameroon", AmountMillions: 2.1},
	{Label: "KampalaLearning", Country: "Ghana", AmountMillions: 1.7},
	{Label: "ZetuData", Country: "Rwanda", AmountMillions: 27.7},
	{Label: "LomeCredit", Country: "Mali", AmountMillions: 1.8},
	{Label: "ZetuLingua", Country: "Benin", AmountMillions: 0.8},
	{Label: "AfyaPredict", Country: "Benin", AmountMillions: 3.1},
	{Label: "ShambaRobotics", Country: "Rwanda", AmountMillions: 1.0},
	{Label: "BaobabFarms", Country: "Zimbabwe", AmountMillions: 1.9},
	{Label: "ZambeziNet", Country: "Kenya", AmountMillions: 7.6},
	{Label: "AtlasData", Country: "Tunisia", AmountMillions: 0.9},
	{Label: "HarareDiagnostics", Country: "Algeria", AmountMillions: 0.9},
	{Label: "NileGenomics", Country: "Cameroon", AmountMillions: 0.8},
	{Label: "TunisLearning", Country: "Botswana", AmountMillions: 1.4},
	{Label: "ZetuCredit", Country: "Nigeria", AmountMillions: 0.9},
	{Label: "AtlasScript", Country: "Mali", AmountMillions: 1.5},
	{Label: "LuandaMind", Country: "Uganda", AmountMillions: 2.0},
	{Label: "AtlasTech", Country: "Ivory Coast", AmountMillions: 0.8},
	{Label: "AgriLingua", Country: "Senegal", AmountMillions: 1.6},
	{Label: "LagosNet", Country: "Tunisia", AmountMillions: 0.9},
	{Label: "LagosInsight", Country: "Egypt", AmountMillions: 1.2},
	{Label: "AbujaTech", Country: "Botswana", AmountMillions: 5.2},
	{Label: "TunisSense", Country: "Ghana", AmountMillions: 3.4},
	{Label: "FahamuNet", Country: "Tunisia", AmountMillions: 0.7},
	{Label: "NairobiNet", Country: "Botswana", AmountMillions: 1.1},
	{Label: "AgriCare", Country: "Uganda", AmountMillions: 0.9},
	{Label: "KanzuAI", Country: "Egypt", AmountMillions: 0.7},
	{Label: "FahamuPredict", Country: "Ethiopia", AmountMillions: 2.4},
	{Label: "TajiLabs", Country: "Rwanda", AmountMillions: 1.7},
	{Label: "KigaliHealth", Country: "South Africa", AmountMillions: 0.9},
	{Label: "CotonouIntelligence", Country: "South Africa", AmountMillions: 2.2},
	{Label: "LuandaCredit", Country: "Ghana", AmountMillions: 1.4},
	{Label: "BaobabScript", Country: "Zimbabwe", AmountMillions: 1.1},
	{Label: "DakarVision", Country: "Senegal", AmountMillions: 0.7},
	{Label: "AccraScan", Country: "Algeria", AmountMillions: 0.7},
	{Label: "AfyaSense", Country: "Mali", AmountMillions: 4.3},
	{Label: "LuandaLingua", Country: "Morocco", AmountMillions: 5.1},
	{Label: "NiameyTech", Country: "Cameroon", AmountMillions: 1.4},
	{Label: "LusakaMed", Country: "Tanzania", AmountMillions: 3.2},
	{Label: "SokoPredict", Country: "Botswana", AmountMillions: 1.5},
	{Label: "SokoPay", Country: "Rwanda", AmountMillions: 0.8},
	{Label: "ImaraHealth", Country: "Uganda", AmountMillions: 0.8},
	{Label: "AfriLend", Country: "Mali", AmountMillions: 0.9},
	{Label: "ImaraLend", Country: "Rwanda", AmountMillions: 4.9},
	{Label: "AgriHealth", Country: "Kenya", AmountMillions: 2.7},
	{Label: "SahelScan", Country: "Uganda", AmountMillions: 3.7},
	{Label: "NileFarms", Country: "Rwanda", AmountMillions: 4.9},
	{Label: "DumaScript", Country: "Zimbabwe", AmountMillions: 0.8},
	{Label: "MoyoCredit", Country: "Ghana", AmountMillions: 0.9},
	{Label: "CotonouInsight", Country: "Benin", AmountMillions: 0.8},
	{Label: "KigaliIntelligence", Country: "Rwanda", AmountMillions: 2.5},
	{Label: "MaliCloud", Country: "Ivory Coast", AmountMillions: 4.4},
	{Label: "KaziPay", Country: "Egypt", AmountMillions: 1.1},
	{Label: "LusakaDiagnostics", Country: "Tanzania", AmountMillions: 1.6},
	{Label: "AfyaDiagnostics", Country: "Zambia", AmountMillions: 0.8},
	{Label: "CotonouLabs", Country: "Egypt", AmountMillions: 6.6},
	{Label: "SavannaGenomics", Country: "Uganda", AmountMillions: 3.8},
	{Label: "KiliLogic", Country: "Morocco", AmountMillions: 16.4},
	{Label: "KaziCredit", Country: "Zambia", AmountMillions: 2.9},
	{Label: "BaobabDiagnostics", Country: "Tunisia", AmountMillions: 4.3},
	{Label: "DumaLearning", Country: "Rwanda", AmountMillions: 0.7},
	{Label: "NileLearning", Country: "Mali", AmountMillions: 2.2},
	{Label: "KiliLabs", Country: "Mali", AmountMillions: 1.0},
	{Label: "LuandaScan", Country: "Rwanda", AmountMillions: 6.7},
	{Label: "JuaDiagnostics", Country: "Zimbabwe", AmountMillions: 2.8},
	{Label: "MaliSense", Country: "Cameroon", AmountMillions: 3.8},
	{Label: "SavannaVision", Country: "Cameroon", AmountMillions: 2.9},
	{Label: "AgriGenomics", Country: "Senegal", AmountMillions: 0.9},
	{Label: "PesaTech", Country: "Ivory Coast", AmountMillions: 2.6},
	{Label: "BamakoLingua", Country: "Mali", AmountMillions: 0.8},
	{Label: "LusakaVoice", Country: "Zimbabwe", AmountMillions: 4.0},
	{Label: "UbuntuSense", Country: "Ethiopia", AmountMillions: 3.7},
	{Label: "MoyoLabs", Country: "Benin", AmountMillions: 0.9},
	{Label: "SavannaLingua", Country: "Uganda", AmountMillions: 3.0},
}

var governmentCommitments = []Entry{
	{Label: "Nigeria National AI Strategy Fund", Country: "Nigeria", AmountMillions: 4.8},
	{Label: "Egypt AI Initiative", Country: "Egypt", AmountMillions: 4.1},
	{Label: "Kenya Digital Economy Programme", Country: "Kenya", AmountMillions: 9.1},
	{Label: "Rwanda Centre for the Fourth Industrial Revolution", Country: "Rwanda", AmountMillions: 3.8},
	{Label: "South Africa AI Institute", Country: "South Africa", AmountMillions: 3.3},
	{Label: "Tunisia Startup Act Fund", Country: "Tunisia", AmountMillions: 3.7},
	{Label: "Morocco Digital Development Agency", Country: "Morocco", AmountMillions: 4.2},
	{Label: "Ghana Data Protection and AI Programme", Country: "Ghana", AmountMillions: 12.0},
	{Label: "Senegal Digital Senegal 2025", Country: "Senegal", AmountMillions: 30.6},
	{Label: "Ethiopia AI Institute", Country: "Ethiopia", AmountMillions: 3.9},
	{Label: "Mauritius AI Council", Country: "Mauritius", AmountMillions: 6.2},
	{Label: "Uganda Science and Innovation Fund", Country: "Uganda", AmountMillions: 4.4},
	{Label: "Algeria Digital Transition Programme", Country: "Algeria", AmountMillions: 44.5},
	{Label: "Botswana Innovation Hub AI Track", Country: "Botswana", AmountMillions: 5.2},
	{Label: "Zambia Smart Zambia Initiative", Country: "Zambia", AmountMillions: 20.4},
	{Label: "Benin Seme City AI Programme", Country: "Benin", AmountMillions: 3.4},
	{Label: "Togo Digital Transformation Fund", Country: "Togo", AmountMillions: 32.9},
	{Label: "Cameroon National Digital Plan", Country: "Cameroon", AmountMillions: 3.5},
}

var developmentPrograms = []Entry{
	{Label: "AI4D Africa (IDRC/Sida)", Country: "Pan-African", AmountMillions: 33.8},
	{Label: "Gates Foundation Grand Challenges AI", Country: "Pan-African", AmountMillions: 4.7},
	{Label: "Google AI Research Accra", Country: "Ghana", AmountMillions: 4.1},
	{Label: "Meta AI Residency Africa", Country: "Pan-African", AmountMillions: 5.6},
	{Label: "Mozilla Common Voice Kiswahili", Country: "Kenya", AmountMillions: 9.1},
	{Label: "GIZ FAIR Forward", Country: "Pan-African", AmountMillions: 4.9},
	{Label: "World Bank Digital Economy for Africa", Country: "Pan-African", AmountMillions: 7.0},
	{Label: "UNDP timbuktoo AI Hub", Country: "Pan-African", AmountMillions: 6.0},
	{Label: "Mastercard Foundation EdTech AI", Country: "Pan-African", AmountMillions: 5.2},
	{Label: "AfDB Digital and AI Skills", Country: "Pan-African", AmountMillions: 6.6},
	{Label: "Lacuna Fund African Language Datasets", Country: "Pan-African", AmountMillions: 4.5},
	{Label: "DeepMind Scholars Africa", Country: "Pan-African", AmountMillions: 8.5},
}
