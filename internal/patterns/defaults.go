package patterns

import "fjacquet/txn-categorizer/internal/models"

// defaultPatterns is the built-in trigger phrase database, in vocabulary order.
// Phrases are lowercase; whitespace inside a phrase is insignificant when matching.
// Bare words of three letters or fewer are avoided where they occur inside common
// words ("atm" in "treatment", "oyo" in "toyota").
var defaultPatterns = []CategoryPatterns{
	{Category: models.CategorySalary, Patterns: []string{
		"salary", "salary credit", "sal credit", "payroll", "monthly salary", "stipend", "wages",
	}},
	{Category: models.CategoryFreelance, Patterns: []string{
		"upwork", "fiverr", "freelancer.com", "toptal", "consulting fee", "professional fees", "invoice payment",
	}},
	{Category: models.CategoryInterest, Patterns: []string{
		"interest credit", "int.pd", "savings interest", "fd interest", "sb interest", "dividend",
	}},
	{Category: models.CategoryRefund, Patterns: []string{
		"refund", "cashback", "reversal", "chargeback",
	}},
	{Category: models.CategoryDining, Patterns: []string{
		"swiggy", "zomato", "dominos", "domino", "mcdonalds", "mcdonald", "kfc", "burger king",
		"pizza hut", "starbucks", "hungerbox", "wrap chip", "subway", "haldiram", "barbeque nation",
		"chaayos", "cafe coffee day", "eatsure", "restaurant", "dineout",
	}},
	{Category: models.CategoryGroceries, Patterns: []string{
		"swiggy instamart", "instamart", "zepto", "zeptonow", "blinkit", "grofers", "bigbasket",
		"dmart", "jiomart", "reliance fresh", "more supermarket", "natures basket", "spencers",
		"licious", "country delight", "milkbasket", "kirana",
	}},
	{Category: models.CategoryTransport, Patterns: []string{
		"uber", "ola cabs", "rapido", "namma yatri", "blusmart", "delhi metro", "dmrc", "metro card",
		"bmtc", "redbus", "fastag", "parking",
	}},
	{Category: models.CategoryFuel, Patterns: []string{
		"indian oil", "iocl", "bharat petroleum", "bpcl", "hindustan petroleum", "hpcl", "shell petrol", "shell india",
		"nayara", "petrol pump", "fuel station", "filling station",
	}},
	{Category: models.CategoryShopping, Patterns: []string{
		"amazon", "amzn", "flipkart", "myntra", "ajio", "meesho", "nykaa", "zudio", "westside",
		"decathlon", "ikea", "lifestyle", "shoppers stop", "tata cliq", "snapdeal", "pantaloons",
		"max fashion", "rebel market",
	}},
	{Category: models.CategoryElectronics, Patterns: []string{
		"croma", "reliance digital", "vijay sales", "apple store", "samsung store", "mi store", "oneplus store",
	}},
	{Category: models.CategoryEntertainment, Patterns: []string{
		"bookmyshow", "pvr cinemas", "pvr inox", "inox", "cinepolis", "steam games", "playstation", "xbox",
	}},
	{Category: models.CategorySubscriptions, Patterns: []string{
		"netflix", "spotify", "amazon prime", "prime video", "hotstar", "youtube premium", "apple.com/bill",
		"itunes", "google one", "google play", "openai", "chatgpt", "sonyliv", "zee5", "audible",
		"linkedin premium", "icloud",
	}},
	{Category: models.CategoryUtilities, Patterns: []string{
		"electricity", "bescom", "tata power", "adani electricity", "bses", "msedcl", "water bill",
		"jal board", "indraprastha gas", "mahanagar gas", "piped gas", "indane", "bharat gas", "hp gas",
	}},
	{Category: models.CategoryTelecom, Patterns: []string{
		"airtel", "reliance jio", "jio prepaid", "jiofiber", "jio recharge", "vodafone", "vi prepaid",
		"bsnl", "act fibernet", "hathway", "tata play", "broadband", "mobile recharge", "postpaid",
	}},
	{Category: models.CategoryRent, Patterns: []string{
		"house rent", "rent payment", "rent paid", "monthly rent", "nobroker", "nestaway", "cred rent", "landlord",
	}},
	{Category: models.CategoryHousing, Patterns: []string{
		"urban company", "urbanclap", "housejoy", "maintenance", "society maintenance", "mygate",
		"pepperfry", "plumber", "electrician", "home centre", "asian paints",
	}},
	{Category: models.CategoryHealthcare, Patterns: []string{
		"apollo", "pharmeasy", "netmeds", "tata 1mg", "1mg", "practo", "medplus", "hospital", "clinic",
		"pharmacy", "diagnostic", "lal pathlabs", "fortis", "chemist", "medical store",
	}},
	{Category: models.CategoryFitness, Patterns: []string{
		"cult.fit", "cure.fit", "anytime fitness", "gold's gym", "gym", "fitness", "healthifyme", "yoga",
	}},
	{Category: models.CategoryPersonalCare, Patterns: []string{
		"salon", "day spa", "lakme", "naturals salon", "barber", "jawed habib", "enrich salon", "grooming",
	}},
	{Category: models.CategoryEducation, Patterns: []string{
		"thapar institute", "thapar", "university", "college", "school fee", "tuition", "coursera",
		"udemy", "byjus", "unacademy", "upgrad", "vedantu", "exam fee",
	}},
	{Category: models.CategoryTravel, Patterns: []string{
		"goibibo", "makemytrip", "irctc", "indigo", "air india", "vistara", "spicejet", "akasa air",
		"cleartrip", "yatra", "easemytrip", "ixigo", "oyo rooms", "airbnb", "booking.com", "agoda", "taj hotels",
	}},
	{Category: models.CategoryInsurance, Patterns: []string{
		"lic of india", "licindia", "life insurance", "insurance premium", "policybazaar", "hdfc life",
		"icici prudential", "icici lombard", "star health", "max life", "sbi life", "bajaj allianz",
		"acko", "digit insurance", "tata aig", "care health",
	}},
	{Category: models.CategoryInvestments, Patterns: []string{
		"groww", "zerodha", "upstox", "mutual fund", "mutual f", "kuvera", "angel one", "smallcase",
		"national pension", "indmoney", "paytm money", "etmoney", "icici direct", "hdfc securities",
		"fixed deposit", "recurring deposit", "indian clearing",
	}},
	{Category: models.CategoryLoans, Patterns: []string{
		"loan emi", "emi payment", "bajaj finance", "bajaj finserv", "home loan", "car loan",
		"personal loan", "loan repayment", "credit card payment", "cred club",
	}},
	{Category: models.CategoryTaxes, Patterns: []string{
		"income tax", "advance tax", "property tax", "professional tax", "gst payment", "tds",
		"challan", "cbdt", "tin nsdl",
	}},
	{Category: models.CategoryBankCharges, Patterns: []string{
		"bank charges", "service charge", "sms charges", "annual fee", "maintenance charge",
		"minimum balance", "min bal", "penalty", "late fee", "debit card fee", "chq book",
	}},
	{Category: models.CategoryCashWithdraw, Patterns: []string{
		"atm wdl", "atm withdrawal", "cash withdrawal", "cash wdl", "nfs cash", "atm cash",
	}},
	{Category: models.CategoryTransfers, Patterns: []string{
		"self transfer", "fund transfer", "funds transfer", "own account", "transfer to", "transfer from",
		"neft", "imps", "rtgs",
	}},
	{Category: models.CategoryGifts, Patterns: []string{
		"donation", "charity", "giveindia", "ketto", "milaap", "temple", "gurudwara", "church",
		"gift card", "pm cares",
	}},
	{Category: models.CategoryPets, Patterns: []string{
		"supertails", "heads up for tails", "huft", "pet shop", "vet clinic", "veterinary", "drools",
		"pedigree", "pet food",
	}},
	{Category: models.CategoryUncategorized, Patterns: []string{}},
}
