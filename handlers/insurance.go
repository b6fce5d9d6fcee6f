package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LuminLynx/ProductCareHub/models"
)

// insurancePartners is the curated extended-warranty directory.
var insurancePartners = []models.InsurancePartner{
	{
		ID:       1,
		Name:     "SeguroTech Plus",
		Rating:   4.8,
		Reviews:  342,
		Coverage: "Cobertura até 5 anos",
		Price:    "A partir de €49/ano",
		Features: []string{"Reparação ou substituição", "Assistência técnica 24/7", "Sem limites de valor"},
		Contact:  "info@segurotech.pt",
	},
	{
		ID:       2,
		Name:     "Garantia Europa",
		Rating:   4.6,
		Reviews:  521,
		Coverage: "Extensão de garantia europeia",
		Price:    "A partir de €39/ano",
		Features: []string{"Cobertura em toda a UE", "Sem franquia", "Cobertura de danos acidentais"},
		Contact:  "suporte@garantiaeuropa.pt",
	},
	{
		ID:       3,
		Name:     "ProAssistência",
		Rating:   4.7,
		Reviews:  289,
		Coverage: "Proteção total de produto",
		Price:    "A partir de €59/ano",
		Features: []string{"Reparação em casa", "Recolha e entrega gratuita", "Sem documentação complexa"},
		Contact:  "comercial@proassistencia.pt",
	},
}

func (a *API) GetInsurancePartners(c *gin.Context) {
	c.JSON(http.StatusOK, insurancePartners)
}
