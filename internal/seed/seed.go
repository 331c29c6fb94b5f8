// Package seed generates the demo listings and roommate profiles shown on a
// fresh install. Roommate profiles seed with a nil UserID, so no account owns
// them and they are exempt from the one-profile-per-user constraint.
package seed

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/roomies-app/roomies-api/internal/models"
)

var cities = []string{
	"New York, NY",
	"Los Angeles, CA",
	"Chicago, IL",
	"Houston, TX",
	"Phoenix, AZ",
	"Philadelphia, PA",
	"San Antonio, TX",
	"San Diego, CA",
	"Dallas, TX",
	"San Jose, CA",
}

var propertyTypes = []models.PropertyType{
	models.PropertyTypeApartment,
	models.PropertyTypeTownhome,
	models.PropertyTypeHouse,
}

var amenitiesPool = []string{
	"WiFi", "Parking", "Laundry", "Gym", "AC", "Furnished",
	"Pet Friendly", "Dishwasher", "Balcony", "Pool", "Security", "Storage",
}

var listingTitles = []string{
	"Sunny room in shared apartment",
	"Private bedroom with ensuite",
	"Cozy room near downtown",
	"Spacious room in quiet neighborhood",
	"Modern apartment with city view",
	"Charming room in historic building",
	"Bright room with natural light",
	"Furnished room ready to move in",
	"Room in pet-friendly home",
	"Quiet room for professional",
}

var streetNames = []string{
	"Main St", "Oak Ave", "Maple Dr", "Cedar Ln", "Park Blvd",
	"Washington St", "Lake View Dr", "Hill St", "River Rd", "Sunset Blvd",
}

var names = []string{
	"Sarah Chen", "Marcus Johnson", "Elena Rodriguez", "David Kim", "Aisha Patel",
	"Tom Wilson", "Jessica Lee", "James Martinez", "Emily Brown", "Michael Davis",
	"Sofia Garcia", "Daniel Taylor", "Olivia Anderson", "William Thomas", "Emma Jackson",
	"Liam White", "Ava Harris", "Noah Martin", "Isabella Thompson", "Lucas Moore",
	"Mia Clark", "Ethan Lewis", "Charlotte Walker", "Alexander Hall", "Amelia Young",
	"Benjamin King", "Harper Wright", "Henry Lopez", "Evelyn Hill", "Sebastian Scott",
}

var occupations = []string{
	"Software Engineer", "UX Designer", "Teacher", "Nurse", "Marketing Manager",
	"Data Analyst", "Graphic Designer", "Accountant", "Chef", "Architect",
	"Grad Student", "Product Manager", "Writer", "Consultant", "Research Scientist",
}

var lifestyleTags = []string{
	"Early Bird", "Night Owl", "Non-Smoker", "Pet Friendly", "Yoga", "Gamer",
	"Studious", "Quiet", "Social", "Foodie", "Traveler", "Outdoorsy",
	"Music Lover", "Clean", "Minimalist", "Fitness", "Reader", "Cooking",
}

var bios = []string{
	"Looking for a clean, respectful living situation. I work from home sometimes and value quiet evenings.",
	"Outgoing and love hosting friends. Prefer a place with good common areas.",
	"Grad student—mostly at campus or library. Need a quiet room and reliable WiFi.",
	"Professional with a small dog. Need pet-friendly and parking.",
	"I cook a lot and love sharing meals. Prefer roommates who appreciate good food.",
	"Early riser, into fitness. Looking for a place with gym or nearby park.",
	"Work in tech, flexible schedule. I keep to myself but enjoy occasional game nights.",
	"Artist and freelancer. Need natural light and a calm environment.",
}

var listingImageIDs = []string{
	"1502672260266-1c1ef2d93688", "1493809842364-78817add7ffb", "1522708323590-d24dbb6b0267",
	"1554995207-c18c203602cb", "1512918760383-56453715e1c8", "1502005229762-cf1b2da7c5d6",
	"1560448204-e02f43605775", "1484154218962-a197022b5858", "1502672023488-718e0a6406b8",
	"1512917774080-9991f1c4c750", "1600596542815-ffad4c1539e9", "1600585154340-beef1c6a9815",
}

var profileImageIDs = []string{
	"1494790108377-be9c29b29330", "1500648767791-00dcc994a43e", "1534528741775-53994a69daeb",
	"1507003211169-0a1dd7228f2d", "1531123897727-8f129e1688ce", "1506794778202-cad84cf45f1d",
	"1502823403499-6ccdce4a304d", "1517841905240-472988babdf9", "1531746020798-e6953c6e8e04",
	"1524504381995-2c6a6845972a", "1529626455594-4ff0802cfbeb", "1544005313-94ddf0286d6b",
}

func pick(rng *rand.Rand, arr []string) string {
	return arr[rng.Intn(len(arr))]
}

func pickMany(rng *rand.Rand, arr []string, n int) []string {
	shuffled := make([]string, len(arr))
	copy(shuffled, arr)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

// Listings builds count demo listings owned by ownerID.
func Listings(ownerID string, count int) []models.Listing {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	houseRules := "No smoking, quiet hours after 10 PM."
	contact := "Text or email"

	listings := make([]models.Listing, 0, count)
	for i := 0; i < count; i++ {
		city := pick(rng, cities)
		amenities, _ := json.Marshal(pickMany(rng, amenitiesPool, 4))
		deposit := rng.Intn(1000) + 500
		moveIn := time.Now().AddDate(0, 0, rng.Intn(60))

		listings = append(listings, models.Listing{
			ID:           uuid.NewString(),
			Title:        pick(rng, listingTitles),
			City:         city,
			Address:      fmt.Sprintf("%d %s", rng.Intn(9000)+100, pick(rng, streetNames)),
			Rent:         rng.Intn(1500) + 600,
			Deposit:      &deposit,
			MoveInDate:   moveIn.Format("2006-01-02"),
			Amenities:    string(amenities),
			PropertyType: propertyTypes[rng.Intn(len(propertyTypes))],
			Image: fmt.Sprintf("https://images.unsplash.com/photo-%s?auto=format&fit=crop&q=80&w=800",
				listingImageIDs[i%len(listingImageIDs)]),
			Description:        fmt.Sprintf("Spacious and well-located room in %s. Great amenities and friendly neighborhood.", city),
			OwnerID:            ownerID,
			HouseRules:         &houseRules,
			ContactPreferences: &contact,
			CreatedAt:          time.Now(),
		})
	}
	return listings
}

// Roommates builds count demo roommate profiles with no owning account.
func Roommates(count int) []models.Roommate {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	roommates := make([]models.Roommate, 0, count)
	for i := 0; i < count; i++ {
		budgetMin := rng.Intn(600) + 600
		budgetMax := budgetMin + rng.Intn(600) + 200
		moveIn := time.Now().AddDate(0, 0, rng.Intn(90))
		prefs, _ := json.Marshal(pickMany(rng, lifestyleTags, 4))

		roommates = append(roommates, models.Roommate{
			ID:                   uuid.NewString(),
			UserID:               nil,
			Name:                 pick(rng, names),
			Age:                  rng.Intn(25) + 22,
			Occupation:           pick(rng, occupations),
			City:                 pick(rng, cities),
			BudgetMin:            budgetMin,
			BudgetMax:            budgetMax,
			MoveInDate:           moveIn.Format("2006-01-02"),
			LifestylePreferences: string(prefs),
			Bio:                  pick(rng, bios),
			ProfileImage: fmt.Sprintf("https://images.unsplash.com/photo-%s?auto=format&fit=crop&q=80&w=400",
				profileImageIDs[i%len(profileImageIDs)]),
		})
	}
	return roommates
}
