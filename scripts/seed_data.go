package main

import "github.com/zatekoja/medfinder/backend/internal/domain/entities"

var seedSymptoms = []entities.Symptom{
	{Name: "Cough", Description: "Persistent or dry cough", IconName: "wind", IsCommon: true},
	{Name: "Sore Throat", Description: "Pain or irritation in the throat", IconName: "activity", IsCommon: true},
	{Name: "Runny Nose", Description: "Nasal discharge or congestion", IconName: "droplets", IsCommon: true},
	{Name: "Stuffy Nose", Description: "Blocked nasal passages", IconName: "shield", IsCommon: true},
	{Name: "Sneezing", Description: "Frequent sneezing episodes", IconName: "wind"},
	{Name: "Shortness of Breath", Description: "Difficulty breathing or breathlessness", IconName: "activity"},
	{Name: "Chest Congestion", Description: "Feeling of fullness in the chest", IconName: "heart"},
	{Name: "Wheezing", Description: "High-pitched breathing sound", IconName: "activity"},
	{Name: "Post-nasal Drip", Description: "Mucus dripping from nose to throat", IconName: "droplets"},
	{Name: "Hoarse Voice", Description: "Rough or strained voice", IconName: "mic"},
	{Name: "Nausea", Description: "Feeling of sickness or queasiness", IconName: "frown", IsCommon: true},
	{Name: "Vomiting", Description: "Throwing up or feeling like throwing up", IconName: "frown"},
	{Name: "Stomach Ache", Description: "Pain or discomfort in the stomach area", IconName: "circle", IsCommon: true},
	{Name: "Diarrhea", Description: "Loose or watery stools", IconName: "trending-down"},
	{Name: "Constipation", Description: "Difficulty passing stools", IconName: "minus"},
	{Name: "Heartburn", Description: "Burning sensation in chest or throat", IconName: "flame", IsCommon: true},
	{Name: "Acid Reflux", Description: "Stomach acid backing up into esophagus", IconName: "arrow-up"},
	{Name: "Bloating", Description: "Feeling of fullness or swelling in abdomen", IconName: "circle"},
	{Name: "Gas", Description: "Excessive gas or flatulence", IconName: "wind"},
	{Name: "Indigestion", Description: "Discomfort after eating", IconName: "circle"},
	{Name: "Loss of Appetite", Description: "Reduced desire to eat", IconName: "minus"},
	{Name: "Stomach Cramps", Description: "Sharp pains in the stomach", IconName: "zap"},
	{Name: "Headache", Description: "Pain in the head or upper neck", IconName: "brain", IsCommon: true},
	{Name: "Migraine", Description: "Severe headache with other symptoms", IconName: "brain"},
	{Name: "Back Pain", Description: "Pain in the back muscles or spine", IconName: "activity", IsCommon: true},
	{Name: "Neck Pain", Description: "Pain or stiffness in the neck", IconName: "activity"},
	{Name: "Muscle Pain", Description: "Aching or sore muscles", IconName: "activity", IsCommon: true},
	{Name: "Joint Pain", Description: "Pain in joints like knees, elbows", IconName: "activity", IsCommon: true},
	{Name: "Arthritis", Description: "Joint inflammation and stiffness", IconName: "activity"},
	{Name: "Menstrual Cramps", Description: "Pain during menstruation", IconName: "heart"},
	{Name: "Toothache", Description: "Pain in or around teeth", IconName: "activity"},
	{Name: "Earache", Description: "Pain in the ear", IconName: "activity"},
	{Name: "Chest Pain", Description: "Pain or discomfort in chest area", IconName: "heart"},
	{Name: "Foot Pain", Description: "Pain in feet or ankles", IconName: "activity"},
	{Name: "Fever", Description: "Elevated body temperature", IconName: "thermometer", IsCommon: true},
	{Name: "Chills", Description: "Feeling cold with shivering", IconName: "snowflake"},
	{Name: "Body Aches", Description: "General body pain and discomfort", IconName: "activity", IsCommon: true},
	{Name: "Fatigue", Description: "Extreme tiredness or exhaustion", IconName: "battery", IsCommon: true},
	{Name: "Weakness", Description: "Lack of physical strength", IconName: "trending-down"},
	{Name: "Malaise", Description: "General feeling of being unwell", IconName: "frown"},
	{Name: "Rash", Description: "Red, itchy, or irritated skin", IconName: "activity", IsCommon: true},
	{Name: "Itchy Skin", Description: "Skin that feels itchy or irritated", IconName: "activity"},
	{Name: "Dry Skin", Description: "Skin that feels dry or flaky", IconName: "sun"},
	{Name: "Acne", Description: "Pimples or skin breakouts", IconName: "circle"},
	{Name: "Eczema", Description: "Inflamed, itchy skin condition", IconName: "activity"},
	{Name: "Sunburn", Description: "Skin damage from sun exposure", IconName: "sun"},
	{Name: "Cuts", Description: "Minor cuts or scrapes", IconName: "activity"},
	{Name: "Bruises", Description: "Discolored skin from injury", IconName: "circle"},
	{Name: "Insect Bites", Description: "Bites from mosquitoes, bees, etc.", IconName: "activity"},
	{Name: "Hives", Description: "Raised, itchy bumps on skin", IconName: "activity"},
	{Name: "Insomnia", Description: "Difficulty falling or staying asleep", IconName: "moon", IsCommon: true},
	{Name: "Anxiety", Description: "Feelings of worry or nervousness", IconName: "heart", IsCommon: true},
	{Name: "Stress", Description: "Mental or emotional strain", IconName: "zap", IsCommon: true},
	{Name: "Depression", Description: "Persistent feelings of sadness", IconName: "cloud"},
	{Name: "Restlessness", Description: "Inability to rest or relax", IconName: "activity"},
	{Name: "Mood Swings", Description: "Rapid changes in emotional state", IconName: "trending-up"},
	{Name: "Concentration Problems", Description: "Difficulty focusing or concentrating", IconName: "brain"},
	{Name: "Hemorrhoids", Description: "Swollen veins in rectum or anus", IconName: "circle"},
	{Name: "Motion Sickness", Description: "Nausea from travel or movement", IconName: "rotate-cw"},
	{Name: "Morning Sickness", Description: "Nausea during pregnancy", IconName: "sunrise"},
	{Name: "Eye Irritation", Description: "Red, itchy, or watery eyes", IconName: "eye"},
	{Name: "Dry Eyes", Description: "Eyes that feel dry or gritty", IconName: "eye"},
	{Name: "Eye Strain", Description: "Tired eyes from screen time", IconName: "eye"},
	{Name: "Pink Eye", Description: "Eye infection or irritation", IconName: "eye"},
	{Name: "Seasonal Allergies", Description: "Allergic reactions to pollen", IconName: "cloud", IsCommon: true},
	{Name: "Food Allergies", Description: "Allergic reactions to food", IconName: "activity"},
	{Name: "Hay Fever", Description: "Allergic rhinitis", IconName: "wind"},
	{Name: "Allergic Reactions", Description: "General allergic responses", IconName: "alert-triangle"},
	{Name: "PMS", Description: "Premenstrual syndrome symptoms", IconName: "heart"},
	{Name: "Yeast Infection", Description: "Vaginal yeast infection", IconName: "activity"},
	{Name: "UTI Symptoms", Description: "Urinary tract infection symptoms", IconName: "droplets"},
	{Name: "Cold Hands and Feet", Description: "Poor circulation in extremities", IconName: "snowflake"},
	{Name: "Leg Cramps", Description: "Muscle cramps in legs", IconName: "zap"},
	{Name: "Varicose Veins", Description: "Enlarged, twisted veins", IconName: "activity"},
	{Name: "Bad Breath", Description: "Unpleasant mouth odor", IconName: "wind"},
	{Name: "Dandruff", Description: "Flaky scalp condition", IconName: "activity"},
	{Name: "Excessive Sweating", Description: "Abnormal amount of sweating", IconName: "droplets"},
	{Name: "Dizziness", Description: "Feeling lightheaded or unsteady", IconName: "rotate-cw", IsCommon: true},
	{Name: "Vertigo", Description: "Spinning sensation", IconName: "rotate-cw"},
	{Name: "Tinnitus", Description: "Ringing in the ears", IconName: "volume-2"},
	{Name: "Hiccups", Description: "Involuntary spasms of the diaphragm", IconName: "activity"},
	{Name: "Snoring", Description: "Loud breathing during sleep", IconName: "volume-2"},
	{Name: "Cold Sores", Description: "Viral infection causing lip sores", IconName: "activity"},
	{Name: "Canker Sores", Description: "Painful mouth ulcers", IconName: "circle"},
}

var seedMedications = []seedMedication{
	{
		Medication: entities.Medication{
			BrandName:    "Tylenol",
			GenericName:  "Acetaminophen",
			Category:     entities.MedicationCategoryOTC,
			Description:  "Pain reliever and fever reducer that's gentle on the stomach",
			Uses:         "Headaches, muscle aches, arthritis, backaches, toothaches, colds, and fevers",
			Dosage:       "Adults: 650-1000mg every 4-6 hours, maximum 4000mg in 24 hours. Children: consult packaging for weight-based dosing",
			Precautions:  "Do not exceed recommended dose. Avoid alcohol consumption. Consult doctor if pregnant or breastfeeding",
			Interactions: "May interact with warfarin and other blood thinners. Avoid with other acetaminophen-containing products",
			SideEffects:  "Rare at recommended doses. Overdose can cause liver damage. Allergic reactions possible but uncommon",
		},
		price: 8.99,
	},
	{
		Medication: entities.Medication{
			BrandName:    "Advil",
			GenericName:  "Ibuprofen",
			Category:     entities.MedicationCategoryOTC,
			Description:  "Nonsteroidal anti-inflammatory drug (NSAID) that reduces pain, fever, and inflammation",
			Uses:         "Headaches, dental pain, menstrual cramps, muscle aches, arthritis, minor injuries, fever",
			Dosage:       "Adults: 200-400mg every 4-6 hours, maximum 1200mg in 24 hours. Take with food or milk",
			Precautions:  "Not recommended during pregnancy (especially 3rd trimester). Avoid if allergic to aspirin. Use cautiously with heart/kidney disease",
			Interactions: "May interact with blood thinners, aspirin, ACE inhibitors, lithium, and methotrexate",
			SideEffects:  "Stomach upset, heartburn, dizziness, headache. Rare: stomach bleeding, kidney problems",
		},
		price: 7.49,
	},
	{
		Medication: entities.Medication{
			BrandName:    "Aleve",
			GenericName:  "Naproxen Sodium",
			Category:     entities.MedicationCategoryOTC,
			Description:  "Long-lasting NSAID for all-day pain relief",
			Uses:         "Arthritis, back pain, menstrual cramps, headaches, muscle aches, toothaches",
			Dosage:       "Adults: 220mg every 8-12 hours, maximum 660mg in 24 hours. Take with food",
			Precautions:  "Similar to ibuprofen. Not for children under 12. Avoid during pregnancy",
			Interactions: "Similar to other NSAIDs. Monitor blood pressure if taking BP medications",
			SideEffects:  "Similar to ibuprofen but may last longer due to longer half-life",
		},
		price: 9.99,
	},
	{
		Medication: entities.Medication{
			BrandName:    "Aspirin",
			GenericName:  "Acetylsalicylic Acid",
			Category:     entities.MedicationCategoryOTC,
			Description:  "Pain reliever, fever reducer, and blood thinner",
			Uses:         "Headaches, muscle pain, toothaches, fever, arthritis, heart attack prevention (low dose)",
			Dosage:       "Adults: 325-650mg every 4 hours for pain. 81mg daily for heart protection (consult doctor)",
			Precautions:  "Not for children under 16 due to Reye's syndrome risk. Avoid before surgery",
			Interactions: "Enhances blood thinners. May interact with diabetes medications",
			SideEffects:  "Stomach irritation, heartburn, increased bleeding risk, ringing in ears (high doses)",
		},
		price: 4.99,
	},
	{
		Medication: entities.Medication{
			BrandName:    "Dayquil",
			GenericName:  "Acetaminophen/Dextromethorphan/Phenylephrine",
			Category:     entities.MedicationCategoryOTC,
			Description:  "Multi-symptom cold and flu relief for daytime use",
			Uses:         "Cold and flu symptoms including aches, fever, cough, and nasal congestion",
			Dosage:       "Adults: 30ml every 4 hours, maximum 4 doses in 24 hours",
			Precautions:  "Do not exceed recommended dose. Avoid alcohol. Don't use with other acetaminophen products",
			Interactions: "MAO inhibitors, blood pressure medications, antidepressants",
			SideEffects:  "Drowsiness, dizziness, nausea, nervousness, trouble sleeping",
		},
		price: 12.99,
	},
	{
		Medication: entities.Medication{
			BrandName:    "Nyquil",
			GenericName:  "Acetaminophen/Dextromethorphan/Doxylamine",
			Category:     entities.MedicationCategoryOTC,
			Description:  "Nighttime cold and flu relief with sleep aid",
			Uses:         "Cold and flu symptoms with help falling asleep",
			Dosage:       "Adults: 30ml every 6 hours before bedtime, maximum 4 doses in 24 hours",
			Precautions:  "Causes drowsiness. Don't drive or operate machinery. Avoid alcohol",
			Interactions: "Sleep aids, anxiety medications, muscle relaxants, MAO inhibitors",
			SideEffects:  "Drowsiness, dizziness, blurred vision, dry mouth, nausea",
		},
		price: 12.99,
	},
	{
		Medication: entities.Medication{
			BrandName:    "Robitussin DM",
			GenericName:  "Dextromethorphan/Guaifenesin",
			Category:     entities.MedicationCategoryOTC,
			Description:  "Cough suppressant and expectorant",
			Uses:         "Cough due to minor throat and bronchial irritation, helps loosen mucus",
			Dosage:       "Adults: 10-20ml every 4 hours, maximum 6 doses in 24 hours",
			Precautions:  "Don't use for persistent cough from smoking or asthma. Consult doctor for chronic cough",
			Interactions: "MAO inhibitors, fluoxetine, quinidine",
			SideEffects:  "Drowsiness, dizziness, nausea, vomiting, stomach upset",
		},
		price: 8.49,
	},
	{
		Medication: entities.Medication{
			BrandName:    "Mucinex",
			GenericName:  "Guaifenesin",
			Category:     entities.MedicationCategoryOTC,
			Description:  "Expectorant that helps loosen mucus and phlegm",
			Uses:         "Chest congestion, helps make coughs more productive",
			Dosage:       "Adults: 600-1200mg every 12 hours with plenty of water",
			Precautions:  "Drink plenty of fluids. Consult doctor for persistent cough",
			Interactions: "Few known interactions. Safe with most medications",
			SideEffects:  "Nausea, vomiting, stomach upset, dizziness, headache",
		},
		price: 14.99,
	},
	{
		Medication: entities.Medication{
			BrandName:    "Sudafed",
			GenericName:  "Pseudoephedrine",
			Category:     entities.MedicationCategoryOTC,
			Description:  "Nasal decongestant for sinus and nasal congestion",
			Uses:         "Nasal congestion, sinus pressure, stuffiness due to colds or allergies",
			Dosage:       "Adults: 60mg every 4-6 hours, maximum 240mg in 24 hours",
			Precautions:  "Requires ID to purchase. May cause insomnia. Avoid with high blood pressure",
			Interactions: "MAO inhibitors, blood pressure medications, antidepressants",
			SideEffects:  "Restlessness, nervousness, trouble sleeping, increased heart rate",
		},
		price: 11.99,
	},
	{
		Medication: entities.Medication{
			BrandName:    "Benadryl",
			GenericName:  "Diphenhydramine",
			Category:     entities.MedicationCategoryOTC,
			Description:  "Antihistamine for allergies and sleep aid",
			Uses:         "Allergic reactions, hay fever, runny nose, sneezing, itching, insomnia",
			Dosage:       "Adults: 25-50mg every 4-6 hours, maximum 300mg in 24 hours",
			Precautions:  "Causes drowsiness. Don't drive. Avoid alcohol. Not for children under 2",
			Interactions: "Sleep aids, alcohol, muscle relaxants, anxiety medications",
			SideEffects:  "Drowsiness, dry mouth, blurred vision, constipation, urinary retention",
		},
		price: 6.99,
	},
	{
		Medication: entities.Medication{
			BrandName:    "Claritin",
			GenericName:  "Loratadine",
			Category:     entities.MedicationCategoryOTC,
			Description:  "Non-drowsy 24-hour allergy relief",
			Uses:         "Seasonal allergies, hay fever, runny nose, sneezing, itchy eyes",
			Dosage:       "Adults and children 6+: 10mg once daily",
			Precautions:  "Generally non-drowsy. Consult doctor for liver or kidney disease",
			Interactions: "Few interactions. May interact with certain antifungals",
			SideEffects:  "Headache, fatigue, dry mouth (less common than older antihistamines)",
		},
		price: 15.99,
	},
	{
		Medication: entities.Medication{
			BrandName:    "Zyrtec",
			GenericName:  "Cetirizine",
			Category:     entities.MedicationCategoryOTC,
			Description:  "24-hour allergy relief, may cause mild drowsiness",
			Uses:         "Seasonal allergies, year-round allergies, hives, itching",
			Dosage:       "Adults and children 6+: 10mg once daily",
			Precautions:  "May cause drowsiness in some people. Adjust dose for kidney problems",
			Interactions: "Alcohol may increase drowsiness. Few other interactions",
			SideEffects:  "Drowsiness, fatigue, dry mouth, pharyngitis",
		},
		price: 16.99,
	},
	{
		Medication: entities.Medication{
			BrandName:    "Allegra",
			GenericName:  "Fexofenadine",
			Category:     entities.MedicationCategoryOTC,
			Description:  "Non-drowsy 24-hour allergy relief",
			Uses:         "Seasonal allergies, hay fever, chronic hives",
			Dosage:       "Adults and children 12+: 180mg once daily or 60mg twice daily",
			Precautions:  "Take on empty stomach. Don't take with fruit juices",
			Interactions: "Antacids may reduce absorption. Few other interactions",
			SideEffects:  "Headache, back pain, cough, fever (uncommon)",
		},
		price: 18.99,
	},
	{
		Medication: entities.Medication{
			BrandName:    "Pepto-Bismol",
			GenericName:  "Bismuth Subsalicylate",
			Category:     entities.MedicationCategoryOTC,
			Description:  "Multi-symptom stomach relief",
			Uses:         "Nausea, heartburn, indigestion, upset stomach, diarrhea",
			Dosage:       "Adults: 30ml or 2 tablets every 30-60 minutes, maximum 8 doses in 24 hours",
			Precautions:  "Don't use with aspirin allergy. May turn stool black temporarily",
			Interactions: "May affect absorption of some antibiotics and diabetes medications",
			SideEffects:  "Black tongue/stool (temporary), constipation, ringing in ears",
		},
		price: 7.99,
	},
	{
		Medication: entities.Medication{
			BrandName:    "Tums",
			GenericName:  "Calcium Carbonate",
			Category:     entities.MedicationCategoryOTC,
			Description:  "Antacid for heartburn and acid indigestion",
			Uses:         "Heartburn, acid indigestion, sour stomach, calcium supplement",
			Dosage:       "Adults: 2-4 tablets as needed, maximum 15 tablets in 24 hours",
			Precautions:  "Don't exceed recommended dose. May cause kidney stones with overuse",
			Interactions: "May reduce absorption of some antibiotics and iron",
			SideEffects:  "Constipation, gas, nausea (with overuse)",
		},
		price: 5.99,
	},
	{
		Medication: entities.Medication{
			BrandName:    "Mylanta",
			GenericName:  "Aluminum/Magnesium Hydroxide/Simethicone",
			Category:     entities.MedicationCategoryOTC,
			Description:  "Antacid and anti-gas medication",
			Uses:         "Heartburn, acid indigestion, gas, bloating",
			Dosage:       "Adults: 2-4 teaspoons between meals and bedtime",
			Precautions:  "Don't use for more than 2 weeks without consulting doctor",
			Interactions: "May affect absorption of many medications. Take 2 hours apart",
			SideEffects:  "Diarrhea (magnesium), constipation (aluminum), nausea",
		},
		price: 8.49,
	},
	{
		Medication: entities.Medication{
			BrandName:    "Imodium A-D",
			GenericName:  "Loperamide",
			Category:     entities.MedicationCategoryOTC,
			Description:  "Anti-diarrheal medication",
			Uses:         "Diarrhea, including traveler's diarrhea",
			Dosage:       "Adults: 4mg initially, then 2mg after each loose stool, maximum 8mg in 24 hours",
			Precautions:  "Don't use for more than 2 days. Stop if fever develops",
			Interactions: "May interact with certain antibiotics and antifungals",
			SideEffects:  "Constipation, dizziness, drowsiness, nausea",
		},
		price: 9.99,
	},
	{
		Medication: entities.Medication{
			BrandName:    "Miralax",
			GenericName:  "Polyethylene Glycol 3350",
			Category:     entities.MedicationCategoryOTC,
			Description:  "Osmotic laxative for occasional constipation",
			Uses:         "Occasional constipation, irregular bowel movements",
			Dosage:       "Adults: 17g (1 capful) dissolved in 4-8 oz of beverage once daily",
			Precautions:  "Don't use for more than 1 week. Increase fluid intake",
			Interactions: "Few interactions. May affect absorption of some medications",
			SideEffects:  "Bloating, cramping, gas, nausea",
		},
		price: 12.99,
	},
	{
		Medication: entities.Medication{
			BrandName:    "Melatonin",
			GenericName:  "Melatonin",
			Category:     entities.MedicationCategoryOTC,
			Description:  "Natural sleep hormone supplement",
			Uses:         "Insomnia, jet lag, sleep disorders, establishing sleep cycle",
			Dosage:       "Adults: 0.5-3mg taken 30 minutes before desired bedtime",
			Precautions:  "May cause drowsiness next day. Start with lowest dose",
			Interactions: "Blood thinners, immunosuppressants, diabetes medications",
			SideEffects:  "Daytime drowsiness, headache, dizziness, nausea",
		},
		price: 11.99,
	},
	{
		Medication: entities.Medication{
			BrandName:    "ZzzQuil",
			GenericName:  "Diphenhydramine",
			Category:     entities.MedicationCategoryOTC,
			Description:  "Non-habit forming sleep aid",
			Uses:         "Occasional sleeplessness, trouble falling asleep",
			Dosage:       "Adults: 50mg (2 softgels) at bedtime if needed",
			Precautions:  "For occasional use only. Don't use with alcohol",
			Interactions: "Similar to Benadryl - other sedating medications",
			SideEffects:  "Next-day drowsiness, dry mouth, dizziness, constipation",
		},
		price: 8.99,
	},
	{
		Medication: entities.Medication{
			BrandName:    "Neosporin",
			GenericName:  "Neomycin/Polymyxin B/Bacitracin",
			Category:     entities.MedicationCategoryOTC,
			Description:  "Antibiotic ointment for minor cuts and scrapes",
			Uses:         "Prevention of infection in minor cuts, scrapes, burns",
			Dosage:       "Apply small amount to affected area 1-3 times daily",
			Precautions:  "For external use only. Don't use on large areas or deep wounds",
			Interactions: "Few topical interactions",
			SideEffects:  "Skin irritation, rash, allergic reactions (rare)",
		},
		price: 6.49,
	},
	{
		Medication: entities.Medication{
			BrandName:    "Hydrocortisone Cream",
			GenericName:  "Hydrocortisone",
			Category:     entities.MedicationCategoryOTC,
			Description:  "Topical corticosteroid for itching and inflammation",
			Uses:         "Eczema, dermatitis, insect bites, poison ivy, minor skin irritations",
			Dosage:       "Apply thin layer to affected area 2-4 times daily",
			Precautions:  "Don't use on face or groin for more than 2 weeks. Not for children under 2",
			Interactions: "Few interactions with topical use",
			SideEffects:  "Skin thinning with prolonged use, burning, itching",
		},
		price: 7.99,
	},
	{
		Medication: entities.Medication{
			BrandName:    "Calamine Lotion",
			GenericName:  "Calamine",
			Category:     entities.MedicationCategoryOTC,
			Description:  "Topical anti-itch and drying agent",
			Uses:         "Poison ivy, poison oak, insect bites, chicken pox, minor skin irritations",
			Dosage:       "Shake well, apply to affected area as needed",
			Precautions:  "For external use only. Avoid eyes and mucous membranes",
			Interactions: "None known",
			SideEffects:  "Skin dryness, mild irritation (rare)",
		},
		price: 4.99,
	},
	{
		Medication: entities.Medication{
			BrandName:    "Visine",
			GenericName:  "Tetrahydrozoline",
			Category:     entities.MedicationCategoryOTC,
			Description:  "Eye drops for red, irritated eyes",
			Uses:         "Red eyes due to minor irritation, dryness, allergies",
			Dosage:       "1-2 drops in affected eye(s) up to 4 times daily",
			Precautions:  "Don't use for more than 3 days. Remove contact lenses before use",
			Interactions: "Few interactions",
			SideEffects:  "Brief stinging, increased redness with overuse",
		},
		price: 5.99,
	},
	{
		Medication: entities.Medication{
			BrandName:    "Systane",
			GenericName:  "Polyethylene Glycol/Propylene Glycol",
			Category:     entities.MedicationCategoryOTC,
			Description:  "Lubricating eye drops for dry eyes",
			Uses:         "Dry eyes, eye discomfort from environmental factors",
			Dosage:       "1-2 drops in each eye as needed throughout the day",
			Precautions:  "Remove contact lenses before use, wait 15 minutes before reinserting",
			Interactions: "None known",
			SideEffects:  "Temporary blurred vision, mild eye irritation",
		},
		price: 12.99,
	},
	{
		Medication: entities.Medication{
			BrandName:    "Midol",
			GenericName:  "Acetaminophen/Caffeine/Pyrilamine",
			Category:     entities.MedicationCategoryOTC,
			Description:  "Multi-symptom menstrual relief",
			Uses:         "Menstrual cramps, bloating, water weight gain, fatigue",
			Dosage:       "Adults: 2 caplets every 6 hours, maximum 6 caplets in 24 hours",
			Precautions:  "Contains caffeine. Don't exceed recommended dose",
			Interactions: "Other acetaminophen products, blood thinners",
			SideEffects:  "Nervousness, trouble sleeping, stomach upset",
		},
		price: 9.99,
	},
	{
		Medication: entities.Medication{
			BrandName:    "Monistat",
			GenericName:  "Miconazole",
			Category:     entities.MedicationCategoryOTC,
			Description:  "Antifungal treatment for yeast infections",
			Uses:         "Vaginal yeast infections",
			Dosage:       "Insert 1 applicator or suppository vaginally at bedtime for 3-7 days",
			Precautions:  "Complete full course even if symptoms improve. Consult doctor if first yeast infection",
			Interactions: "May weaken latex condoms and diaphragms",
			SideEffects:  "Vaginal burning, itching, irritation",
		},
		price: 15.99,
	},
}

var seedLinks = []seedLink{
	{"Headache", "Tylenol", 4},
	{"Headache", "Advil", 5},
	{"Headache", "Aleve", 4},
	{"Headache", "Aspirin", 4},
	{"Migraine", "Advil", 4},
	{"Migraine", "Aleve", 4},
	{"Migraine", "Aspirin", 3},
	{"Fever", "Tylenol", 5},
	{"Fever", "Advil", 5},
	{"Fever", "Aspirin", 4},
	{"Body Aches", "Tylenol", 4},
	{"Body Aches", "Advil", 5},
	{"Body Aches", "Aleve", 5},
	{"Body Aches", "Aspirin", 4},
	{"Muscle Pain", "Advil", 5},
	{"Muscle Pain", "Aleve", 5},
	{"Muscle Pain", "Tylenol", 3},
	{"Joint Pain", "Advil", 5},
	{"Joint Pain", "Aleve", 5},
	{"Joint Pain", "Aspirin", 4},
	{"Back Pain", "Advil", 5},
	{"Back Pain", "Aleve", 5},
	{"Back Pain", "Tylenol", 3},
	{"Neck Pain", "Advil", 4},
	{"Neck Pain", "Aleve", 4},
	{"Arthritis", "Advil", 4},
	{"Arthritis", "Aleve", 5},
	{"Arthritis", "Aspirin", 4},
	{"Menstrual Cramps", "Midol", 5},
	{"Menstrual Cramps", "Advil", 5},
	{"Menstrual Cramps", "Aleve", 4},
	{"Toothache", "Advil", 5},
	{"Toothache", "Tylenol", 4},
	{"Cough", "Robitussin DM", 5},
	{"Cough", "Dayquil", 4},
	{"Cough", "Nyquil", 4},
	{"Chest Congestion", "Mucinex", 5},
	{"Chest Congestion", "Robitussin DM", 4},
	{"Runny Nose", "Dayquil", 4},
	{"Runny Nose", "Benadryl", 4},
	{"Runny Nose", "Claritin", 5},
	{"Runny Nose", "Zyrtec", 5},
	{"Runny Nose", "Allegra", 5},
	{"Stuffy Nose", "Sudafed", 5},
	{"Stuffy Nose", "Dayquil", 4},
	{"Sore Throat", "Tylenol", 4},
	{"Sore Throat", "Advil", 4},
	{"Sore Throat", "Dayquil", 3},
	{"Sneezing", "Benadryl", 4},
	{"Sneezing", "Claritin", 5},
	{"Sneezing", "Zyrtec", 5},
	{"Sneezing", "Allegra", 5},
	{"Seasonal Allergies", "Claritin", 5},
	{"Seasonal Allergies", "Zyrtec", 5},
	{"Seasonal Allergies", "Allegra", 5},
	{"Seasonal Allergies", "Benadryl", 4},
	{"Hay Fever", "Claritin", 5},
	{"Hay Fever", "Zyrtec", 5},
	{"Hay Fever", "Allegra", 5},
	{"Eye Irritation", "Visine", 4},
	{"Eye Irritation", "Benadryl", 3},
	{"Dry Eyes", "Systane", 5},
	{"Nausea", "Pepto-Bismol", 4},
	{"Nausea", "Benadryl", 3},
	{"Stomach Ache", "Pepto-Bismol", 4},
	{"Stomach Ache", "Tums", 3},
	{"Heartburn", "Tums", 5},
	{"Heartburn", "Mylanta", 5},
	{"Heartburn", "Pepto-Bismol", 4},
	{"Acid Reflux", "Tums", 4},
	{"Acid Reflux", "Mylanta", 5},
	{"Indigestion", "Pepto-Bismol", 5},
	{"Indigestion", "Tums", 4},
	{"Indigestion", "Mylanta", 4},
	{"Diarrhea", "Imodium A-D", 5},
	{"Diarrhea", "Pepto-Bismol", 4},
	{"Constipation", "Miralax", 5},
	{"Bloating", "Mylanta", 4},
	{"Bloating", "Midol", 4},
	{"Gas", "Mylanta", 5},
	{"Insomnia", "Melatonin", 4},
	{"Insomnia", "ZzzQuil", 4},
	{"Insomnia", "Benadryl", 3},
	{"Rash", "Hydrocortisone Cream", 4},
	{"Rash", "Benadryl", 3},
	{"Rash", "Calamine Lotion", 3},
	{"Itchy Skin", "Hydrocortisone Cream", 5},
	{"Itchy Skin", "Benadryl", 4},
	{"Itchy Skin", "Calamine Lotion", 4},
	{"Eczema", "Hydrocortisone Cream", 4},
	{"Insect Bites", "Hydrocortisone Cream", 4},
	{"Insect Bites", "Calamine Lotion", 4},
	{"Insect Bites", "Benadryl", 3},
	{"Cuts", "Neosporin", 5},
	{"Anxiety", "Benadryl", 2},
	{"PMS", "Midol", 5},
	{"PMS", "Advil", 4},
	{"Yeast Infection", "Monistat", 5},
	{"Fatigue", "Midol", 3},
	{"Motion Sickness", "Benadryl", 4},
	{"Dizziness", "Benadryl", 2},
}
