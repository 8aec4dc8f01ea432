package main

import (
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"loonbedrijf/internal/database"
	"loonbedrijf/internal/domain"
	"loonbedrijf/internal/modules/blog"
	"loonbedrijf/internal/modules/content"
	"loonbedrijf/internal/modules/upload"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "loonbedrijf.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Client{},
		&domain.Invoice{},
		&domain.PrecisionOperation{},
		&domain.BlogPost{},
		&upload.Upload{},
		&content.Inquiry{},
		&content.ServicePage{},
		&content.Testimonial{},
		&content.GalleryItem{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM inquiries")
	db.Exec("DELETE FROM gallery_items")
	db.Exec("DELETE FROM testimonials")
	db.Exec("DELETE FROM service_pages")
	db.Exec("DELETE FROM uploads")
	db.Exec("DELETE FROM blog_posts")
	db.Exec("DELETE FROM precision_operations")
	db.Exec("DELETE FROM invoices")
	db.Exec("DELETE FROM clients")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	adminUser := domain.User{
		ID:           uuid.NewString(),
		Email:        "admin@vanderbergloonwerk.nl",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Beheerder",
	}
	db.Create(&adminUser)
	log.Println("Admin created: admin@vanderbergloonwerk.nl / admin123")

	portalHash, _ := bcrypt.GenerateFromPassword([]byte("klant123"), bcrypt.DefaultCost)
	portalUsers := []domain.User{
		{ID: uuid.NewString(), Email: "info@maatschapdevries.nl", PasswordHash: string(portalHash), Role: domain.RolePortal, Name: "Jan de Vries"},
		{ID: uuid.NewString(), Email: "beheer@gemeentewestland.nl", PasswordHash: string(portalHash), Role: domain.RolePortal, Name: "Sanne Bakker"},
	}
	for i := range portalUsers {
		db.Create(&portalUsers[i])
	}

	// ================== CLIENTS ==================
	log.Println("Creating clients...")

	clients := []domain.Client{
		{
			ID:            uuid.NewString(),
			UserID:        portalUsers[0].ID,
			CompanyName:   "Maatschap De Vries",
			ContactPerson: "Jan de Vries",
			Phone:         "+31 6 12345678",
			Address:       "Polderweg 12, 2681 AB Monster",
		},
		{
			ID:            uuid.NewString(),
			UserID:        portalUsers[1].ID,
			CompanyName:   "Gemeente Westland",
			ContactPerson: "Sanne Bakker",
			Phone:         "+31 174 673673",
			Address:       "Verdilaan 7, 2671 VW Naaldwijk",
		},
	}
	for i := range clients {
		db.Create(&clients[i])
	}

	// ================== INVOICES ==================
	log.Println("Creating invoices...")

	now := time.Now()
	invoices := []domain.Invoice{
		{
			ID: uuid.NewString(), ClientID: clients[0].ID,
			InvoiceNumber: "2026-0141", Amount: 4850.00,
			Status:     domain.InvoicePaid,
			IssuedDate: now.AddDate(0, -2, 0), DueDate: now.AddDate(0, -1, 0),
			PDFURL: "/static/uploads/invoices/2026-0141.pdf",
		},
		{
			ID: uuid.NewString(), ClientID: clients[0].ID,
			InvoiceNumber: "2026-0168", Amount: 2310.50,
			Status:     domain.InvoicePending,
			IssuedDate: now.AddDate(0, 0, -10), DueDate: now.AddDate(0, 0, 20),
		},
		{
			ID: uuid.NewString(), ClientID: clients[1].ID,
			InvoiceNumber: "2026-0152", Amount: 12675.00,
			Status:     domain.InvoiceOverdue,
			IssuedDate: now.AddDate(0, -2, -5), DueDate: now.AddDate(0, -1, -5),
		},
	}
	for i := range invoices {
		db.Create(&invoices[i])
	}

	// ================== OPERATIONS ==================
	log.Println("Creating operations...")

	pastEnd := now.AddDate(0, 0, -12)
	area1 := 14.5
	area2 := 3.2
	operations := []domain.PrecisionOperation{
		{
			ID: uuid.NewString(), ClientID: clients[0].ID,
			OperationType: "Grasland doorzaaien",
			Location:      "Perceel Polderweg Noord",
			StartDate:     now.AddDate(0, 0, -14), EndDate: &pastEnd,
			EquipmentUsed: []string{"Vredo doorzaaimachine", "Fendt 724"},
			AreaCovered:   &area1,
			Notes:         "Doorgezaaid met kruidenrijk mengsel.",
			Metrics:       map[string]string{"zaaidichtheid": "25 kg/ha", "werkdiepte": "1,5 cm"},
		},
		{
			ID: uuid.NewString(), ClientID: clients[0].ID,
			OperationType: "Mais hakselen",
			Location:      "Perceel Polderweg Zuid",
			StartDate:     now.AddDate(0, 0, 21),
			EquipmentUsed: []string{"Claas Jaguar 960"},
			Notes:         "Gepland zodra het gewas afgerijpt is.",
		},
		{
			ID: uuid.NewString(), ClientID: clients[1].ID,
			OperationType: "Watergang baggeren",
			Location:      "Singel Verdilaan",
			StartDate:     now.AddDate(0, 1, 0),
			EquipmentUsed: []string{"Baggerpomp", "Kraan op rupsen"},
			AreaCovered:   &area2,
		},
	}
	for i := range operations {
		db.Create(&operations[i])
	}

	// ================== BLOG ==================
	log.Println("Creating blog posts...")

	posts := []struct {
		Title     string
		Excerpt   string
		Category  string
		ReadTime  string
		Published bool
	}{
		{
			Title:     "Precisielandbouw in de praktijk",
			Excerpt:   "Hoe GPS-gestuurde machines bemesting en zaaien nauwkeuriger maken.",
			Category:  "Innovatie",
			ReadTime:  "5 min",
			Published: true,
		},
		{
			Title:     "Slootonderhoud voor het najaar",
			Excerpt:   "Waarom tijdig maaien en baggeren wateroverlast voorkomt.",
			Category:  "Agrarisch",
			ReadTime:  "4 min",
			Published: true,
		},
		{
			Title:     "Onze nieuwe rupskraan in bedrijf",
			Excerpt:   "De eerste projecten met de nieuwe 25-tons rupskraan.",
			Category:  "Techniek",
			ReadTime:  "3 min",
			Published: true,
		},
		{
			Title:     "Kruidenrijk grasland en bodemleven",
			Excerpt:   "Wat een diverser grasbestand doet voor de bodem.",
			Category:  "Duurzaamheid",
			ReadTime:  "6 min",
			Published: false,
		},
	}
	for _, p := range posts {
		post := domain.BlogPost{
			ID:        uuid.NewString(),
			Title:     p.Title,
			Slug:      blog.DeriveSlug(p.Title),
			Excerpt:   p.Excerpt,
			Content:   "<p>" + p.Excerpt + "</p>",
			Category:  p.Category,
			ReadTime:  p.ReadTime,
			AuthorID:  adminUser.ID,
			Published: p.Published,
		}
		db.Create(&post)
	}

	// ================== SERVICE PAGES ==================
	log.Println("Creating service pages...")

	services := []content.ServicePage{
		{Slug: "agrarisch-loonwerk", Title: "Agrarisch loonwerk", Tagline: "Van zaaien tot oogsten", SortOrder: 1},
		{Slug: "grondverzet-infra", Title: "Grondverzet & infra", Tagline: "Grondwerk voor bouw en infra", SortOrder: 2},
		{Slug: "water-natuur", Title: "Water & natuur", Tagline: "Slootonderhoud en natuurbeheer", SortOrder: 3},
		{Slug: "civiele-techniek", Title: "Civiele techniek", Tagline: "Riolering, bestrating en kabels", SortOrder: 4},
		{Slug: "transport-logistiek", Title: "Transport & logistiek", Tagline: "Kippers en diepladers", SortOrder: 5},
		{Slug: "machine-verhuur", Title: "Machineverhuur", Tagline: "Met of zonder machinist", SortOrder: 6},
	}
	for i := range services {
		services[i].ID = uuid.NewString()
		services[i].Description = services[i].Tagline + ", uitgevoerd door ervaren machinisten met modern materieel."
		db.Create(&services[i])
	}

	// ================== TESTIMONIALS ==================
	log.Println("Creating testimonials...")

	testimonials := []content.Testimonial{
		{ID: uuid.NewString(), Author: "Jan de Vries", Company: "Maatschap De Vries", Quote: "Altijd op tijd, ook in een natte oogst.", Rating: 5, SortOrder: 1},
		{ID: uuid.NewString(), Author: "Sanne Bakker", Company: "Gemeente Westland", Quote: "Het baggerwerk was strak gepland en netjes opgeleverd.", Rating: 5, SortOrder: 2},
		{ID: uuid.NewString(), Author: "Pieter Kuijpers", Company: "Kuijpers Bouw", Quote: "Flexibel in de planning en duidelijk over de kosten.", Rating: 4, SortOrder: 3},
	}
	for i := range testimonials {
		db.Create(&testimonials[i])
	}

	// ================== GALLERY ==================
	log.Println("Creating gallery...")

	gallery := []content.GalleryItem{
		{ID: uuid.NewString(), Title: "Mais hakselen bij avondlicht", Category: "Agrarisch", ImageURL: "/static/uploads/gallery/hakselen.jpg", SortOrder: 1},
		{ID: uuid.NewString(), Title: "Bouwrijp maken nieuwbouwwijk", Category: "Grondverzet", ImageURL: "/static/uploads/gallery/bouwrijp.jpg", SortOrder: 2},
		{ID: uuid.NewString(), Title: "Slootmaaien langs de polderweg", Category: "Water", ImageURL: "/static/uploads/gallery/slootmaaien.jpg", SortOrder: 3},
		{ID: uuid.NewString(), Title: "Dieplader met rupskraan", Category: "Transport", ImageURL: "/static/uploads/gallery/dieplader.jpg", SortOrder: 4},
	}
	for i := range gallery {
		db.Create(&gallery[i])
	}

	log.Println("Seed completed.")
}
