package services

import (
	"path/filepath"
	"time"

	"product-auth-system/models"
	"product-auth-system/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type ProductService struct {
	DB           *gorm.DB
	Industries   *IndustryService
	Gamification *GamificationService
	Vision       *VisionClient
	TrueMarks    utils.TrueMarkGenerator
}

func NewProductService(db *gorm.DB, industries *IndustryService, gamification *GamificationService, vision *VisionClient) *ProductService {
	return &ProductService{
		DB:           db,
		Industries:   industries,
		Gamification: gamification,
		Vision:       vision,
		TrueMarks:    utils.NewTrueMarkGenerator(),
	}
}

// CreateProduct creates a new product from a multipart form: metadata fields
// plus a product photo uploaded to R2. If the vision service is reachable the
// photo is classified and the product is tagged with an industry profile;
// classification failure leaves the product unclassified rather than failing
// the upload.
func (s *ProductService) CreateProduct(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	name := c.FormValue("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	product := &models.Product{
		ID:          uuid.NewString(),
		OwnerID:     userID,
		Name:        name,
		Slug:        slug.Make(name),
		Brand:       c.FormValue("brand"),
		Description: c.FormValue("description"),
	}

	// 📷 Product photo → R2 (small, public asset)
	if imageFile, err := c.FormFile("image"); err == nil && imageFile.Size > 0 {
		if !utils.AllowedImageType(imageFile.Header.Get("Content-Type")) {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "unsupported image type: upload a JPEG, PNG, WebP, or GIF"})
		}
		imageExt := filepath.Ext(imageFile.Filename)
		if imageExt == "" {
			imageExt = ".jpg"
		}
		imageKey := "products/" + uuid.NewString() + imageExt
		imageURL, err := utils.UploadFileToR2(imageFile, imageKey)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"error": "failed to upload product image", "cause": err.Error()})
		}
		product.ImageURL = imageURL
	}

	// 🤖 Classify the photo if we have one (best-effort)
	if product.ImageURL != "" && s.Vision != nil {
		if signal, err := s.Vision.ClassifyImage(product.ImageURL); err == nil {
			product.Category = signal.Category
			product.Confidence = signal.Confidence
			product.IndustryID = s.Industries.ClassifyIndustry(signal.Keywords, signal.Name, signal.Description)
			if product.Brand == "" {
				product.Brand = signal.Brand
			}
		}
	}
	if product.IndustryID == "" {
		product.IndustryID = s.Industries.ClassifyIndustry(nil, product.Name, product.Description)
	}

	if err := s.DB.Create(product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "failed to create product", "cause": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// GetProducts lists the caller's products, newest first.
func (s *ProductService) GetProducts(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var products []models.Product
	if err := s.DB.Where("owner_id = ?", userID).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "failed to list products", "cause": err.Error()})
	}

	return c.JSON(products)
}

// GetProductByID returns one product with its provenance artifacts (workflow,
// story, authenticity features) and scan history.
func (s *ProductService) GetProductByID(c *fiber.Ctx) error {
	var product models.Product
	if err := s.DB.Preload("Scans").Where("id = ?", c.Params("id")).First(&product).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "failed to fetch product", "cause": err.Error()})
	}

	story := s.Industries.GenerateStory(product.IndustryID, product.Name, product.Brand, nil)
	if story == "" {
		story = s.Industries.GenerateStory(models.DefaultIndustryID, product.Name, product.Brand, nil)
	}

	return c.JSON(fiber.Map{
		"product":               product,
		"workflow":              s.Industries.GenerateWorkflow(product.IndustryID),
		"story":                 story,
		"authenticity_features": s.Industries.AuthenticityFeatures(product.IndustryID),
	})
}

// ClassifyImage classifies an already-uploaded image URL without creating a
// product — used by the upload page to preview the detected industry.
func (s *ProductService) ClassifyImage(c *fiber.Ctx) error {
	type Req struct {
		ImageURL string `json:"image_url"`
	}
	var req Req
	if err := c.BodyParser(&req); err != nil || req.ImageURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "image_url is required"})
	}

	if s.Vision == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "vision service not configured"})
	}

	signal, err := s.Vision.ClassifyImage(req.ImageURL)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).
			JSON(fiber.Map{"error": "failed to classify image", "cause": err.Error()})
	}

	industryID := s.Industries.ClassifyIndustry(signal.Keywords, signal.Name, signal.Description)
	industry, _ := s.Industries.GetIndustry(industryID)

	return c.JSON(fiber.Map{
		"signal":      signal,
		"industry_id": industryID,
		"industry": fiber.Map{
			"id":          industry.ID,
			"name":        industry.Name,
			"icon":        industry.Icon,
			"market_size": industry.MarketSize,
		},
	})
}

// RegisterProduct mints a TrueMark for an owned, unregistered product and
// records the mock blockchain transaction. Registration points (doubled for
// the first ever) are awarded afterwards; a gamification failure only drops
// the gamification block from the response.
func (s *ProductService) RegisterProduct(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var product models.Product
	if err := s.DB.Where("id = ?", c.Params("id")).First(&product).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "failed to fetch product", "cause": err.Error()})
	}

	if product.OwnerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "not the product owner"})
	}
	if product.IsRegistered {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "product already registered"})
	}

	mark, err := s.TrueMarks.Generate()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "failed to generate TrueMark", "cause": err.Error()})
	}

	now := time.Now()
	product.IsRegistered = true
	product.TrueMarkID = &mark.ID
	product.BlockchainTxHash = mark.TxHash
	product.TrueMarkData = mark.Data
	product.RegisteredAt = &now

	if err := s.DB.Save(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "failed to register product", "cause": err.Error()})
	}

	gamification := s.Gamification.AwardActivity(userID, ActivityRegistration)

	return c.JSON(fiber.Map{
		"success":      true,
		"product":      product,
		"message":      "Product successfully registered on blockchain",
		"gamification": gamification, // null when the gamification store is down
	})
}

// VerifyProduct looks up a product by TrueMark id and records the scan.
// Public — anonymous scans work; authenticated scanners also collect
// verification (or counterfeit-found) points.
func (s *ProductService) VerifyProduct(c *fiber.Ctx) error {
	truemarkID := c.Params("truemark_id")
	scannerID, _ := c.Locals("user_id").(string)

	var product models.Product
	err := s.DB.Where("true_mark_id = ?", truemarkID).First(&product).Error
	if err == gorm.ErrRecordNotFound {
		// 200 on purpose — the verification page renders the counterfeit result
		return c.JSON(fiber.Map{
			"success": false,
			"result":  models.ScanResultCounterfeit,
			"message": "Product not found in blockchain registry",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "failed to verify product", "cause": err.Error()})
	}

	isAuthentic := product.IsRegistered && product.TrueMarkData != ""
	result := models.ScanResultCounterfeit
	confidence := 0.75
	if isAuthentic {
		result = models.ScanResultAuthentic
		confidence = 0.98
	}

	scan := models.Scan{
		ID:         uuid.NewString(),
		ProductID:  product.ID,
		ScannerID:  scannerID,
		Result:     result,
		Confidence: confidence,
		IPAddress:  c.IP(),
		UserAgent:  c.Get("User-Agent"),
	}
	if err := s.DB.Create(&scan).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "failed to record scan", "cause": err.Error()})
	}

	var gamification *AwardResult
	if scannerID != "" {
		activity := ActivityVerification
		if !isAuthentic {
			activity = ActivityCounterfeit
		}
		gamification = s.Gamification.AwardActivity(scannerID, activity)
	}

	if isAuthentic {
		return c.JSON(fiber.Map{
			"success": true,
			"result":  models.ScanResultAuthentic,
			"product": fiber.Map{
				"name":               product.Name,
				"brand":              product.Brand,
				"category":           product.Category,
				"industry_id":        product.IndustryID,
				"description":        product.Description,
				"truemark_id":        product.TrueMarkID,
				"blockchain_tx_hash": product.BlockchainTxHash,
				"registered_at":      product.RegisteredAt,
			},
			"confidence":   confidence,
			"message":      "Product verified as authentic",
			"gamification": gamification,
		})
	}

	return c.JSON(fiber.Map{
		"success":      false,
		"result":       models.ScanResultCounterfeit,
		"message":      "Product verification failed",
		"confidence":   confidence,
		"gamification": gamification,
	})
}

// GetScans lists a product's scan history, newest first.
func (s *ProductService) GetScans(c *fiber.Ctx) error {
	var scans []models.Scan
	if err := s.DB.Where("product_id = ?", c.Params("id")).
		Order("created_at DESC").
		Find(&scans).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "failed to list scans", "cause": err.Error()})
	}
	return c.JSON(scans)
}
