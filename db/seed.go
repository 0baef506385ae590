package db

import (
	"log"
	"time"

	"github.com/leqet/gym-backend/models"
	"golang.org/x/crypto/bcrypt"
)

// Seed populates roles, permissions, demo accounts and the starter
// food and exercise catalogs. Safe to run repeatedly; every record is
// find-or-create.
func Seed() {
	seedRolesAndPermissions()
	seedUsers()
	seedFoods()
	seedExercises()
	log.Println("Seeding complete")
}

func seedRolesAndPermissions() {
	roles := []models.Role{
		{Name: string(models.RoleMember), Description: "Gym member"},
		{Name: string(models.RoleTrainer), Description: "Personal trainer"},
		{Name: string(models.RoleNutritionist), Description: "Diet and nutrition coach"},
		{Name: string(models.RoleAdmin), Description: "System administrator"},
	}
	for i := range roles {
		if err := DB.Where("name = ?", roles[i].Name).FirstOrCreate(&roles[i]).Error; err != nil {
			log.Printf("Failed to seed role %s: %v", roles[i].Name, err)
		}
	}

	permissions := []models.Permission{
		{Name: "plans:create", Resource: "plans", Action: "create", Description: "Build diet and workout plans"},
		{Name: "plans:read", Resource: "plans", Action: "read", Description: "View assigned plans"},
		{Name: "logs:create", Resource: "logs", Action: "create", Description: "Log meals, workouts and activity"},
		{Name: "logs:read", Resource: "logs", Action: "read", Description: "View activity logs"},
		{Name: "users:manage", Resource: "users", Action: "manage", Description: "Invite, update and remove users"},
		{Name: "system:manage", Resource: "system", Action: "manage", Description: "Backups, cache and monitoring"},
		{Name: "catalog:write", Resource: "catalog", Action: "write", Description: "Add foods and exercises"},
		{Name: "schedule:write", Resource: "schedule", Action: "write", Description: "Book and update sessions"},
	}
	for i := range permissions {
		if err := DB.Where("name = ?", permissions[i].Name).FirstOrCreate(&permissions[i]).Error; err != nil {
			log.Printf("Failed to seed permission %s: %v", permissions[i].Name, err)
		}
	}

	grants := map[string][]string{
		string(models.RoleMember):       {"plans:read", "logs:create", "logs:read"},
		string(models.RoleTrainer):      {"plans:create", "plans:read", "logs:read", "catalog:write", "schedule:write"},
		string(models.RoleNutritionist): {"plans:create", "plans:read", "logs:read", "catalog:write"},
		string(models.RoleAdmin):        {"users:manage", "system:manage", "catalog:write", "plans:read", "logs:read"},
	}
	for roleName, permNames := range grants {
		var role models.Role
		if err := DB.Where("name = ?", roleName).First(&role).Error; err != nil {
			continue
		}
		var perms []models.Permission
		if err := DB.Where("name IN ?", permNames).Find(&perms).Error; err != nil {
			continue
		}
		if err := DB.Model(&role).Association("Permissions").Replace(perms); err != nil {
			log.Printf("Failed to grant permissions to %s: %v", roleName, err)
		}
	}
}

func seedUsers() {
	hash, err := bcrypt.GenerateFromPassword([]byte("leqet1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash seed password: %v", err)
		return
	}

	type seedUser struct {
		name  string
		email string
		role  models.UserRole
	}
	seeds := []seedUser{
		{"Admin", "admin@leqet.fit", models.RoleAdmin},
		{"Dawit Bekele", "dawit.trainer@leqet.fit", models.RoleTrainer},
		{"Hanna Tesfaye", "hanna.nutrition@leqet.fit", models.RoleNutritionist},
		{"Abel Girma", "abel@leqet.fit", models.RoleMember},
		{"Sara Alemu", "sara@leqet.fit", models.RoleMember},
	}

	created := map[models.UserRole]uint{}
	for _, s := range seeds {
		var role models.Role
		if err := DB.Where("name = ?", string(s.role)).First(&role).Error; err != nil {
			continue
		}
		user := models.User{
			Name:        s.name,
			Email:       s.email,
			Password:    string(hash),
			RoleID:      role.ID,
			IsActivated: true,
			JoinDate:    time.Now(),
		}
		if err := DB.Where("email = ?", s.email).FirstOrCreate(&user).Error; err != nil {
			log.Printf("Failed to seed user %s: %v", s.email, err)
			continue
		}
		if _, ok := created[s.role]; !ok {
			created[s.role] = user.ID
		}
	}

	// Assign the demo coaches to the demo members.
	trainerID, hasTrainer := created[models.RoleTrainer]
	nutritionistID, hasNutritionist := created[models.RoleNutritionist]
	if hasTrainer || hasNutritionist {
		updates := map[string]interface{}{}
		if hasTrainer {
			updates["trainer_id"] = trainerID
		}
		if hasNutritionist {
			updates["nutritionist_id"] = nutritionistID
		}
		DB.Model(&models.User{}).
			Where("email IN ?", []string{"abel@leqet.fit", "sara@leqet.fit"}).
			Where("trainer_id IS NULL").
			Updates(updates)
	}
}

func fiberGrams(v float64) *float64 { return &v }

func seedFoods() {
	foods := []models.Food{
		{Name: "Injera", NameAmharic: "እንጀራ", Category: "grains", Calories: 130, Protein: 4.3, Carbs: 26.5, Fat: 0.6, Fiber: fiberGrams(2.4)},
		{Name: "Shiro Wot", NameAmharic: "ሽሮ ወጥ", Category: "legumes", Calories: 160, Protein: 8.5, Carbs: 18.0, Fat: 6.2, Fiber: fiberGrams(4.1)},
		{Name: "Misir Wot", NameAmharic: "ምስር ወጥ", Category: "legumes", Calories: 140, Protein: 7.8, Carbs: 17.5, Fat: 4.5, Fiber: fiberGrams(5.0)},
		{Name: "Doro Wot", NameAmharic: "ዶሮ ወጥ", Category: "meat", Calories: 210, Protein: 15.0, Carbs: 6.0, Fat: 14.0},
		{Name: "Tibs", NameAmharic: "ጥብስ", Category: "meat", Calories: 230, Protein: 22.0, Carbs: 2.5, Fat: 15.0},
		{Name: "Gomen", NameAmharic: "ጎመን", Category: "vegetables", Calories: 45, Protein: 3.0, Carbs: 6.5, Fat: 1.2, Fiber: fiberGrams(3.2)},
		{Name: "Kitfo", NameAmharic: "ክትፎ", Category: "meat", Calories: 250, Protein: 18.0, Carbs: 1.5, Fat: 19.0},
		{Name: "Ayib", NameAmharic: "አይብ", Category: "dairy", Calories: 100, Protein: 11.0, Carbs: 3.0, Fat: 5.0},
		{Name: "Chechebsa", NameAmharic: "ጨጨብሳ", Category: "grains", Calories: 290, Protein: 6.0, Carbs: 40.0, Fat: 12.0},
		{Name: "Genfo", NameAmharic: "ገንፎ", Category: "grains", Calories: 180, Protein: 4.5, Carbs: 32.0, Fat: 4.0},
		{Name: "White Rice", Category: "grains", Calories: 130, Protein: 2.7, Carbs: 28.0, Fat: 0.3},
		{Name: "Chicken Breast", Category: "meat", Calories: 165, Protein: 31.0, Carbs: 0, Fat: 3.6},
		{Name: "Boiled Egg", Category: "protein", Calories: 155, Protein: 13.0, Carbs: 1.1, Fat: 11.0},
		{Name: "Banana", Category: "fruit", Calories: 89, Protein: 1.1, Carbs: 22.8, Fat: 0.3, Fiber: fiberGrams(2.6)},
		{Name: "Avocado", Category: "fruit", Calories: 160, Protein: 2.0, Carbs: 8.5, Fat: 14.7, Fiber: fiberGrams(6.7)},
		{Name: "Oats", Category: "grains", Calories: 389, Protein: 16.9, Carbs: 66.3, Fat: 6.9, Fiber: fiberGrams(10.6)},
	}
	for i := range foods {
		if err := DB.Where("name = ? AND is_custom = ?", foods[i].Name, false).
			FirstOrCreate(&foods[i]).Error; err != nil {
			log.Printf("Failed to seed food %s: %v", foods[i].Name, err)
		}
	}
}

func seedExercises() {
	exercises := []models.Exercise{
		{Name: "Treadmill Run", Category: "cardio", CaloriesPerMinute: 10, TargetMuscles: "legs,core", Difficulty: "beginner"},
		{Name: "Stationary Bike", Category: "cardio", CaloriesPerMinute: 7, TargetMuscles: "legs", Difficulty: "beginner"},
		{Name: "Jump Rope", Category: "cardio", CaloriesPerMinute: 12, TargetMuscles: "legs,shoulders,core", Difficulty: "intermediate"},
		{Name: "Bench Press", Category: "strength", CaloriesPerMinute: 6, TargetMuscles: "chest,triceps,shoulders", Difficulty: "intermediate"},
		{Name: "Squat", Category: "strength", CaloriesPerMinute: 8, TargetMuscles: "quads,glutes,core", Difficulty: "intermediate"},
		{Name: "Deadlift", Category: "strength", CaloriesPerMinute: 9, TargetMuscles: "back,glutes,hamstrings", Difficulty: "advanced"},
		{Name: "Lat Pulldown", Category: "strength", CaloriesPerMinute: 5, TargetMuscles: "back,biceps", Difficulty: "beginner"},
		{Name: "Shoulder Press", Category: "strength", CaloriesPerMinute: 5, TargetMuscles: "shoulders,triceps", Difficulty: "intermediate"},
		{Name: "Plank", Category: "core", CaloriesPerMinute: 4, TargetMuscles: "core", Difficulty: "beginner"},
		{Name: "Push Up", Category: "bodyweight", CaloriesPerMinute: 7, TargetMuscles: "chest,triceps,core", Difficulty: "beginner"},
		{Name: "Burpee", Category: "bodyweight", CaloriesPerMinute: 12, TargetMuscles: "full body", Difficulty: "advanced"},
		{Name: "Rowing Machine", Category: "cardio", CaloriesPerMinute: 9, TargetMuscles: "back,legs,core", Difficulty: "intermediate"},
	}
	for i := range exercises {
		if err := DB.Where("name = ?", exercises[i].Name).FirstOrCreate(&exercises[i]).Error; err != nil {
			log.Printf("Failed to seed exercise %s: %v", exercises[i].Name, err)
		}
	}
}
